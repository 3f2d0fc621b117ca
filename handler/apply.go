package handler

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/rehiy/sms-text/service"
)

type H map[string]any

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debugf("[HTTP] Failed to write response: %v", err)
	}
}

// respondError 按错误分类返回状态码
func respondError(w http.ResponseWriter, err error) {
	class := service.ErrorClass(err)
	status := http.StatusInternalServerError
	switch class {
	case "invalid_input", "invalid_sequence", "unsupported_charset":
		status = http.StatusBadRequest
	case "buffer_too_small":
		status = http.StatusRequestEntityTooLarge
	}
	respondJSON(w, status, H{"error": err.Error(), "class": class})
}
