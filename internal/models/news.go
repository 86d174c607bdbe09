package models

type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

type NewsResponse struct {
	Articles []NewsItem `json:"articles"`
	Error    string     `json:"error,omitempty"`
}
