package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/service"
)

// ActivityStreamHandler pushes freshly recorded activity to dashboard
// clients over a websocket.
type ActivityStreamHandler struct {
	broker *service.ActivityBroker
	logger zerolog.Logger
}

// NewActivityStreamHandler constructs the handler.
func NewActivityStreamHandler(broker *service.ActivityBroker, logger zerolog.Logger) *ActivityStreamHandler {
	return &ActivityStreamHandler{
		broker: broker,
		logger: logger.With().Str("component", "activity_stream_handler").Logger(),
	}
}

// Register attaches the websocket upgrade route.
func (h *ActivityStreamHandler) Register(router fiber.Router) {
	router.Use("/stream", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/stream", websocket.New(h.stream))
}

func (h *ActivityStreamHandler) stream(conn *websocket.Conn) {
	events, cancel := h.broker.Subscribe()
	defer cancel()

	// Reads are discarded; the socket exists so we notice the client
	// closing it.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug().Err(err).Msg("activity stream client dropped")
				return
			}
		case <-done:
			return
		}
	}
}
