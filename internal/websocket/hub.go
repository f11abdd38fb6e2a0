package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"mock-interview-be/internal/dto"
	"mock-interview-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans session status updates out to every watcher of a session.
// A frontend opens one socket per recording session and receives a status
// frame on every countdown tick.
type Hub struct {
	// watchers map: session id -> connected clients
	watchers map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout, may be nil
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		watchers:   make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.watchers[client.SessionID] = append(h.watchers[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Watcher registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.watchers[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.watchers[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.watchers[client.SessionID]) == 0 {
					delete(h.watchers, client.SessionID)
					h.logger.Info("Hub", "Last watcher left session", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStatus pushes a status frame to every watcher of the session,
// locally and through Redis for other instances.
func (h *Hub) BroadcastStatus(status dto.SessionStatusResponse) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "session_status",
		"data": status,
	})

	h.deliverLocal(status.SessionId, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"session_id": status.SessionId,
			"message":    json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), "session_status_events", payload)
	}
}

func (h *Hub) deliverLocal(sessionId string, data []byte) {
	h.mu.RLock()
	clients := append([]*Client(nil), h.watchers[sessionId]...)
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Watcher send buffer full, dropping connection", map[string]interface{}{"session_id": sessionId})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "session_status_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			SessionID string          `json:"session_id"`
			Message   json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.deliverLocal(payload.SessionID, payload.Message)
	}
}
