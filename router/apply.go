package router

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rehiy/sms-text/handler"
	"github.com/rehiy/sms-text/service"
)

// Options 路由依赖
type Options struct {
	Recoder     *service.RecodeService
	Events      *service.EventListener
	MetricsPath string
	Gatherer    prometheus.Gatherer
}

func Apply(opts Options) *mux.Router {
	r := mux.NewRouter()

	// API 路由
	api := r.PathPrefix("/api").Subrouter()
	RecodeRegister(api, opts.Recoder)
	HistoryRegister(api)
	SettingRegister(api)

	// WebSocket
	WebSocketRegister(r, opts.Events)

	// 监控指标
	if opts.MetricsPath != "" && opts.Gatherer != nil {
		r.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}

	return r
}

func RecodeRegister(r *mux.Router, rs *service.RecodeService) {
	rh := handler.NewRecodeHandler(rs)

	// 文本转换
	r.HandleFunc("/recode/encode", rh.Encode).Methods("POST")
	r.HandleFunc("/recode/decode", rh.Decode).Methods("POST")
	r.HandleFunc("/recode/detect", rh.Detect).Methods("POST")
	r.HandleFunc("/recode/auto", rh.Auto).Methods("POST")
}

func HistoryRegister(r *mux.Router) {
	hh := handler.NewHistoryHandler()

	// 转换记录管理
	r.HandleFunc("/history/list", hh.ListConversions).Methods("GET")
	r.HandleFunc("/history/delete", hh.DeleteConversions).Methods("POST")
}

func SettingRegister(r *mux.Router) {
	sh := handler.NewSettingHandler()

	// 设置管理
	r.HandleFunc("/settings", sh.GetSettings).Methods("GET")
	r.HandleFunc("/settings/history", sh.UpdateHistorySettings).Methods("PUT")
	r.HandleFunc("/settings/offset", sh.UpdateOffsetSettings).Methods("PUT")
}

func WebSocketRegister(r *mux.Router, events *service.EventListener) {
	ws := handler.NewWebSocketHandler(events)

	r.HandleFunc("/ws/recode", ws.HandleWebSocket)
}
