package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RealtimeHub streams back-office events (moderation queue changes, sent
// messages) to connected admin consoles, keyed by admin id.

type WSClient struct {
	AdminID uint
	Conn    *websocket.Conn
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.AdminID] == nil {
		h.clients[c.AdminID] = make(map[*WSClient]struct{})
	}
	h.clients[c.AdminID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.AdminID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.AdminID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastEvent fans a payload out to every connected console.
func (h *RealtimeHub) BroadcastEvent(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
		}
	}
}
