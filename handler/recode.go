package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rehiy/sms-text/pdutext"
	"github.com/rehiy/sms-text/service"
)

// RecodeHandler 转换处理器
type RecodeHandler struct {
	rs *service.RecodeService
}

// NewRecodeHandler 创建新的转换处理器
func NewRecodeHandler(rs *service.RecodeService) *RecodeHandler {
	return &RecodeHandler{rs: rs}
}

// decodeRequest 解析请求体
func decodeRequest(w http.ResponseWriter, r *http.Request) (*service.RecodeRequest, bool) {
	var req service.RecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, H{"error": err.Error()})
		return nil, false
	}
	req.Source = "http"
	return &req, true
}

// Encode UTF-8 文本转 PDU 文本
// 7bit 时 text 的字节即字母表码，文本映射走 /api/recode/auto
func (h *RecodeHandler) Encode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := h.rs.Encode(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Decode PDU 文本转 UTF-8 文本
func (h *RecodeHandler) Decode(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := h.rs.Decode(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Auto 自动选择 7bit 或 UCS-2 编码
func (h *RecodeHandler) Auto(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := h.rs.EncodeAuto(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Detect 推断编码类型
func (h *RecodeHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Direction string `json:"direction"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, H{"error": err.Error()})
		return
	}

	dir, err := pdutext.ParseDirection(req.Direction)
	if err != nil {
		respondError(w, err)
		return
	}

	kind := h.rs.Detect(dir, req.Text)
	respondJSON(w, http.StatusOK, H{
		"direction": dir.String(),
		"kind":      kind.String(),
		"tag":       byte(kind),
	})
}
