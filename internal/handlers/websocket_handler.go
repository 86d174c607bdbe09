package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/latestcomment/truthlens/internal/services"
)

type WebSocketHandler struct {
	Service *services.FeedService
}

func NewWebSocketHandler(service *services.FeedService) *WebSocketHandler {
	return &WebSocketHandler{Service: service}
}

func (h *WebSocketHandler) WebSocketMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		_ = c.Close()
	}()

	sub := &models.FeedSubscriber{
		Id:     uuid.New(),
		Conn:   c,
		Topic:  c.Query("topic"),
		Region: c.Query("region"),
	}

	h.Service.AddSubscriber(sub)
	h.Service.LoopMessages(ctx, c, sub)
	h.Service.RemoveSubscriber(sub)
}
