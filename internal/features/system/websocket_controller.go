package system

import (
	"go-legal/internal/features/notification"
	"go-legal/pkg/utils"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// WebSocketController pushes new transition notifications to the
// authenticated user for as long as the socket stays open.
type WebSocketController struct {
	Hub    *notification.Hub
	Logger *zap.Logger
}

func NewWebSocketController(hub *notification.Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{Hub: hub, Logger: logger}
}

func (h *WebSocketController) HandleWebSocket(c *websocket.Conn) {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		_ = c.Close()
		return
	}

	events, cancel := h.Hub.Subscribe(claims.UserID, claims.Role)
	defer cancel()

	// Client frames are ignored; reading detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(n); err != nil {
				h.Logger.Debug("websocket write failed",
					zap.String("user_id", claims.UserID),
					zap.Error(err),
				)
				return
			}
		}
	}
}
