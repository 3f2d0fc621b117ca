package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehiy/sms-text/database"
	"github.com/rehiy/sms-text/service"
)

type H map[string]any

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	r, _ := newTestRouterWithEvents(t)
	return r
}

func newTestRouterWithEvents(t *testing.T) (*mux.Router, *service.EventListener) {
	t.Helper()
	require.NoError(t, database.Reset(":memory:"))
	t.Cleanup(func() { database.Close() })

	reg := prometheus.NewRegistry()
	events := service.NewEventListener()
	rs := service.NewRecodeService(service.RecodeOptions{
		MaxCapacity: 256,
		Persist:     true,
		Metrics:     service.NewMetrics(reg),
		Events:      events,
	})
	return Apply(Options{
		Recoder:     rs,
		Events:      events,
		MetricsPath: "/metrics",
		Gatherer:    reg,
	}), events
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestRecodeRoutes(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		desc   string
		path   string
		body   any
		status int
		field  string
		value  any
	}{
		{"encode 7bit", "/api/recode/encode", H{"text": "hello", "kind": "7bit"}, http.StatusOK, "output", "E8329BFD06"},
		{"decode 7bit", "/api/recode/decode", H{"text": "E8329BFD06", "kind": "7bit"}, http.StatusOK, "output", "hello"},
		{"decode ucs2", "/api/recode/decode", H{"text": "4F60597D", "kind": "ucs2"}, http.StatusOK, "output", "你好"},
		{"auto gsm", "/api/recode/auto", H{"text": "hello"}, http.StatusOK, "kind", "7bit"},
		{"auto ucs2", "/api/recode/auto", H{"text": "a{"}, http.StatusOK, "output", "0061007B"},
		{"detect decode", "/api/recode/detect", H{"direction": "decode", "text": "ABCD"}, http.StatusOK, "kind", "unknown"},
		{"detect encode", "/api/recode/detect", H{"direction": "encode", "text": "é"}, http.StatusOK, "kind", "ucs2"},
		{"detect bad direction", "/api/recode/detect", H{"direction": "sideways", "text": "ABCD"}, http.StatusBadRequest, "class", "invalid_input"},
		{"odd hex", "/api/recode/decode", H{"text": "ABC", "kind": "8bit"}, http.StatusBadRequest, "class", "invalid_input"},
		{"bad utf16", "/api/recode/decode", H{"text": "D800", "kind": "ucs2"}, http.StatusBadRequest, "class", "invalid_sequence"},
		{"too small", "/api/recode/encode", H{"text": "hello", "kind": "ucs2", "capacity": 8}, http.StatusRequestEntityTooLarge, "class", "buffer_too_small"},
	}

	for _, tc := range cases {
		status, out := doJSON(t, r, http.MethodPost, tc.path, tc.body)
		assert.Equal(t, tc.status, status, tc.desc)
		assert.Equal(t, tc.value, out[tc.field], tc.desc)
	}
}

func TestHistoryRoutes(t *testing.T) {
	r := newTestRouter(t)

	status, _ := doJSON(t, r, http.MethodPost, "/api/recode/encode", H{"text": "hello", "kind": "7bit"})
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, r, http.MethodPost, "/api/recode/decode", H{"text": "ABC", "kind": "8bit"})
	require.Equal(t, http.StatusBadRequest, status)

	status, out := doJSON(t, r, http.MethodGet, "/api/history/list", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, out["total"])

	status, out = doJSON(t, r, http.MethodGet, "/api/history/list?failed=true", nil)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, out["total"])
	row := out["data"].([]any)[0].(map[string]any)
	id := row["id"]

	status, out = doJSON(t, r, http.MethodPost, "/api/history/delete", H{"ids": []any{id}})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, out["count"])

	status, _ = doJSON(t, r, http.MethodPost, "/api/history/delete", H{"ids": []int{}})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSettingRoutes(t *testing.T) {
	r := newTestRouter(t)

	status, out := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "true", out["history_enabled"])
	assert.Equal(t, "0", out["default_offset"])

	status, _ = doJSON(t, r, http.MethodPut, "/api/settings/offset", H{"default_offset": 8})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodPut, "/api/settings/offset", H{"default_offset": 3})
	require.Equal(t, http.StatusOK, status)

	// 默认偏移作用于未指定 offset 的 7bit 请求
	status, out = doJSON(t, r, http.MethodPost, "/api/recode/encode", H{"text": "\x08e", "kind": "7bit"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "5106", out["output"])
	assert.EqualValues(t, 0x30, out["tag"])

	status, _ = doJSON(t, r, http.MethodPut, "/api/settings/history", H{"history_enabled": false})
	require.Equal(t, http.StatusOK, status)

	doJSON(t, r, http.MethodPost, "/api/recode/encode", H{"text": "hello", "kind": "7bit"})
	status, out = doJSON(t, r, http.MethodGet, "/api/history/list", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, out["total"])
}

func TestMetricsRoute(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/recode/encode", H{"text": "hello", "kind": "7bit"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "smstext_recode_total"))
}

func TestWebSocketFeed(t *testing.T) {
	r, events := newTestRouterWithEvents(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/recode"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// 握手完成后服务端才订阅事件
	require.Eventually(t, func() bool { return events.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	body := strings.NewReader(`{"text":"E8329BFD06","kind":"7bit"}`)
	resp, err := http.Post(srv.URL+"/api/recode/decode", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var res service.RecodeResult
	require.NoError(t, json.Unmarshal(msg, &res))
	assert.Equal(t, "hello", res.Output)
	assert.Equal(t, "decode", res.Direction)
	assert.Equal(t, "7bit", res.Kind)
}
