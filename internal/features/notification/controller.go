package notification

import (
	"prestova-one/pkg/utils"

	"github.com/gofiber/contrib/websocket"
)

type NotificationController struct {
	hub *Hub
}

func NewNotificationController(hub *Hub) *NotificationController {
	return &NotificationController{hub: hub}
}

// HandleWebSocket keeps the connection registered with the hub until the
// client goes away. Inbound messages are drained and discarded; the stream
// is push-only.
func (c *NotificationController) HandleWebSocket(conn *websocket.Conn) {
	userID := ""
	if claims, ok := conn.Locals(utils.UserClaimsKey).(*utils.UserClaims); ok && claims != nil {
		userID = claims.UserID
	}

	c.hub.Register(conn, userID)
	defer func() {
		c.hub.Unregister(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
