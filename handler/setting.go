package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rehiy/sms-text/database"
	"github.com/rehiy/sms-text/pdutext"
)

// SettingHandler 设置处理器
type SettingHandler struct{}

// NewSettingHandler 创建新的设置处理器
func NewSettingHandler() *SettingHandler {
	return &SettingHandler{}
}

// GetSettings 获取所有设置
func (h *SettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := database.GetSettings()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, H{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// UpdateHistorySettings 更新转换记录设置
func (h *SettingHandler) UpdateHistorySettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HistoryEnabled bool `json:"history_enabled"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, H{"error": err.Error()})
		return
	}

	if err := database.SetHistoryEnabled(req.HistoryEnabled); err != nil {
		respondJSON(w, http.StatusInternalServerError, H{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, H{
		"status":          "updated",
		"history_enabled": req.HistoryEnabled,
	})
}

// UpdateOffsetSettings 更新默认 7bit 对齐偏移
func (h *SettingHandler) UpdateOffsetSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DefaultOffset uint8 `json:"default_offset"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, H{"error": err.Error()})
		return
	}

	if req.DefaultOffset > pdutext.MaxOffset {
		respondJSON(w, http.StatusBadRequest, H{"error": "default_offset must be 0-7"})
		return
	}

	if err := database.SetDefaultOffset(req.DefaultOffset); err != nil {
		respondJSON(w, http.StatusInternalServerError, H{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, H{
		"status":         "updated",
		"default_offset": req.DefaultOffset,
	})
}
