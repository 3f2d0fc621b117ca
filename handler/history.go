package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rehiy/sms-text/database"
	"github.com/rehiy/sms-text/models"
)

// HistoryHandler 转换记录处理器
type HistoryHandler struct{}

// NewHistoryHandler 创建新的转换记录处理器
func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{}
}

// ListConversions 获取转换记录列表
func (h *HistoryHandler) ListConversions(w http.ResponseWriter, r *http.Request) {
	filter := &models.ConversionFilter{}
	query := r.URL.Query()

	// 解析查询参数
	filter.Direction = query.Get("direction")
	filter.Kind = query.Get("kind")

	if failed := query.Get("failed"); failed != "" {
		if b, err := strconv.ParseBool(failed); err == nil {
			filter.Failed = &b
		}
	}

	if startTime := query.Get("start_time"); startTime != "" {
		if t, err := time.Parse(time.RFC3339, startTime); err == nil {
			filter.StartTime = t
		}
	}

	if endTime := query.Get("end_time"); endTime != "" {
		if t, err := time.Parse(time.RFC3339, endTime); err == nil {
			filter.EndTime = t
		}
	}

	// 分页参数
	filter.Limit = 50 // 默认每页50条
	if limit := query.Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 && l <= 200 {
			filter.Limit = l
		}
	}

	if offset := query.Get("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	list, total, err := database.GetConversionList(filter)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, H{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, H{
		"data":   list,
		"total":  total,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// DeleteConversions 批量删除转换记录
func (h *HistoryHandler) DeleteConversions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int `json:"ids"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, H{"error": err.Error()})
		return
	}

	if len(req.IDs) == 0 {
		respondJSON(w, http.StatusBadRequest, H{"error": "no IDs provided"})
		return
	}

	n, err := database.BatchDeleteConversions(req.IDs)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, H{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, H{
		"status": "deleted",
		"count":  n,
	})
}
