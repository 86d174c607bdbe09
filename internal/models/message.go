package models

import "time"

// FeedSubscription is what a browser sends over /ws/feed.
type FeedSubscription struct {
	Topic  string `json:"topic"`
	Region string `json:"region"`
}

type FeedFrame struct {
	Topic     string     `json:"topic"`
	Region    string     `json:"region"`
	Articles  []NewsItem `json:"articles"`
	Error     string     `json:"error,omitempty"`
	FetchedAt time.Time  `json:"fetchedAt"`
}
