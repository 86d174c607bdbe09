package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/latestcomment/truthlens/internal/models"
	"go.uber.org/zap"
)

// FeedConn is the part of a websocket connection the feed loop needs.
type FeedConn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
}

type FeedService struct {
	News     *NewsService
	Interval time.Duration

	mu          sync.Mutex
	subscribers map[uuid.UUID]*models.FeedSubscriber
	logger      *zap.Logger
}

func NewFeedService(news *NewsService, interval time.Duration, logger *zap.Logger) *FeedService {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &FeedService{
		News:        news,
		Interval:    interval,
		subscribers: make(map[uuid.UUID]*models.FeedSubscriber),
		logger:      logger,
	}
}

func (s *FeedService) AddSubscriber(sub *models.FeedSubscriber) {
	s.mu.Lock()
	s.subscribers[sub.Id] = sub
	n := len(s.subscribers)
	s.mu.Unlock()
	s.logger.Debug("feed subscriber joined", zap.String("id", sub.Id.String()), zap.Int("subscribers", n))
}

func (s *FeedService) RemoveSubscriber(sub *models.FeedSubscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub.Id)
	n := len(s.subscribers)
	s.mu.Unlock()
	s.logger.Debug("feed subscriber left", zap.String("id", sub.Id.String()), zap.Int("subscribers", n))
}

func (s *FeedService) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

func (s *FeedService) Frame(ctx context.Context, topic, region string) models.FeedFrame {
	resp := s.News.LiveNews(ctx, topic, region)
	return models.FeedFrame{
		Topic:     topic,
		Region:    region,
		Articles:  resp.Articles,
		Error:     resp.Error,
		FetchedAt: time.Now().UTC(),
	}
}

// LoopMessages answers every subscription the client sends with a feed frame,
// starting with the subscriber's initial topic if it has one, and re-sends
// the latest frame on each refresh tick. It returns once the connection stops
// reading or a write fails.
func (s *FeedService) LoopMessages(ctx context.Context, c FeedConn, sub *models.FeedSubscriber) {
	subs := make(chan models.FeedSubscription)
	go func() {
		defer close(subs)
		for {
			var msg models.FeedSubscription
			if err := c.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case subs <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	subscribed := sub.Topic != ""
	if subscribed {
		if err := c.WriteJSON(s.Frame(ctx, sub.Topic, sub.Region)); err != nil {
			return
		}
	}
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-subs:
			if !ok {
				return
			}
			sub.Topic, sub.Region = msg.Topic, msg.Region
			subscribed = true
			if err := c.WriteJSON(s.Frame(ctx, sub.Topic, sub.Region)); err != nil {
				return
			}
		case <-ticker.C:
			if !subscribed {
				continue
			}
			if err := c.WriteJSON(s.Frame(ctx, sub.Topic, sub.Region)); err != nil {
				return
			}
		}
	}
}
