package models

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type FeedSubscriber struct {
	Id     uuid.UUID       `json:"subscriberid"`
	Conn   *websocket.Conn `json:"-"`
	Topic  string          `json:"topic"`
	Region string          `json:"region"`
}
