package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/rehiy/sms-text/service"
)

// WebSocketHandler WebSocket处理器
type WebSocketHandler struct {
	upgrader websocket.Upgrader
	events   *service.EventListener
}

// NewWebSocketHandler 创建新的WebSocket处理器
func NewWebSocketHandler(events *service.EventListener) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		events: events,
	}
}

// HandleWebSocket 将转换事件推送给客户端
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("[WebSocket] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ch, cancel := h.events.Subscribe(100)
	defer cancel()

	log.Infof("[WebSocket] Client connected: %s", r.RemoteAddr)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				log.Infof("[WebSocket] Event channel closed")
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(event)); err != nil {
				log.Infof("[WebSocket] Client disconnected: %v(%s)", r.RemoteAddr, err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Infof("[WebSocket] Client disconnected: %v(%s)", r.RemoteAddr, err)
				return
			}
		}
	}
}
