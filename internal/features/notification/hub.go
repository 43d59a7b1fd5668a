package notification

import (
	"encoding/json"
	"sync"

	"prestova-one/internal/features/approval"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub holds the live websocket connections and fans decision events out to
// them. Writes are serialized per connection by the per-client mutex because
// the fiber websocket connection is not safe for concurrent writers.
type Hub struct {
	logger *zap.Logger

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

type client struct {
	writeMu sync.Mutex
	userID  string
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn, userID string) {
	h.mu.Lock()
	h.clients[conn] = &client{userID: userID}
	h.mu.Unlock()

	h.logger.Debug("websocket client connected", zap.String("actorId", userID))
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// PublishDecision broadcasts a decision event to every connected client.
// Clients filter on their side; the payload carries the requester id so the
// frontend can highlight the user's own requests.
func (h *Hub) PublishDecision(event approval.DecisionEvent) {
	payload, err := json.Marshal(envelope{Event: "decision", Data: event})
	if err != nil {
		h.logger.Error("failed to marshal decision event", zap.Error(err))
		return
	}

	h.mu.RLock()
	conns := make(map[*websocket.Conn]*client, len(h.clients))
	for conn, cl := range h.clients {
		conns[conn] = cl
	}
	h.mu.RUnlock()

	for conn, cl := range conns {
		cl.writeMu.Lock()
		err := conn.WriteMessage(websocket.TextMessage, payload)
		cl.writeMu.Unlock()
		if err != nil {
			h.logger.Debug("dropping dead websocket client", zap.Error(err))
			h.Unregister(conn)
			conn.Close()
		}
	}
}

type envelope struct {
	Event string                 `json:"event"`
	Data  approval.DecisionEvent `json:"data"`
}
