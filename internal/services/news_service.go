package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/latestcomment/truthlens/internal/models"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const maxNewsItems = 10

// NewsProvider fetches the latest articles matching a query.
type NewsProvider interface {
	Latest(ctx context.Context, query string) ([]models.NewsItem, error)
}

type NewsService struct {
	provider NewsProvider
	logger   *zap.Logger
}

func NewNewsService(provider NewsProvider, logger *zap.Logger) *NewsService {
	return &NewsService{provider: provider, logger: logger}
}

// NewsQuery turns the topic and region parameters into a provider query.
func NewsQuery(topic, region string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "news"
	}
	if strings.EqualFold(strings.TrimSpace(region), "india") {
		return topic + " AND India"
	}
	return topic
}

// LiveNews never fails; provider errors come back as the response's Error field.
func (s *NewsService) LiveNews(ctx context.Context, topic, region string) models.NewsResponse {
	query := NewsQuery(topic, region)
	items, err := s.provider.Latest(ctx, query)
	if err != nil {
		s.logger.Warn("live news fetch failed", zap.String("query", query), zap.Error(err))
		return models.NewsResponse{Articles: []models.NewsItem{}, Error: "Failed to fetch news"}
	}
	if len(items) > maxNewsItems {
		items = items[:maxNewsItems]
	}
	return models.NewsResponse{Articles: items}
}

type NewsAPIProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewNewsAPIProvider(client *http.Client, baseURL, apiKey string) *NewsAPIProvider {
	return &NewsAPIProvider{client: client, baseURL: baseURL, apiKey: apiKey}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		URL         string  `json:"url"`
		URLToImage  *string `json:"urlToImage"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (p *NewsAPIProvider) Latest(ctx context.Context, query string) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprint(maxNewsItems))
	params.Set("apiKey", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read news response: %w", err)
	}

	var data newsAPIResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	if data.Status != "ok" {
		return nil, fmt.Errorf("news provider status %q: %s", data.Status, data.Message)
	}

	items := make([]models.NewsItem, 0, len(data.Articles))
	for _, a := range data.Articles {
		item := models.NewsItem{
			Title:       orDefault(a.Title, "No title"),
			Description: orDefault(a.Description, "No description available"),
			URL:         a.URL,
			Source:      orDefault(a.Source.Name, "Unknown"),
			PublishedAt: a.PublishedAt,
		}
		if a.URLToImage != nil {
			item.Image = *a.URLToImage
		}
		items = append(items, item)
	}
	return items, nil
}

// RSSProvider reads any RSS or Atom search feed that takes the query as q.
type RSSProvider struct {
	parser  *gofeed.Parser
	baseURL string
}

func NewRSSProvider(client *http.Client, baseURL string) *RSSProvider {
	parser := gofeed.NewParser()
	parser.Client = client
	return &RSSProvider{parser: parser, baseURL: baseURL}
}

func (p *RSSProvider) Latest(ctx context.Context, query string) ([]models.NewsItem, error) {
	feedURL := p.baseURL + "?" + url.Values{"q": {query}}.Encode()
	feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		item := models.NewsItem{
			Title:       orDefault(it.Title, "No title"),
			Description: orDefault(textOf(it.Description), "No description available"),
			URL:         it.Link,
			Source:      orDefault(feed.Title, "Unknown"),
		}
		if it.Image != nil {
			item.Image = it.Image.URL
		}
		if it.PublishedParsed != nil {
			item.PublishedAt = it.PublishedParsed.UTC().Format(time.RFC3339)
		} else {
			item.PublishedAt = it.Published
		}
		items = append(items, item)
		if len(items) == maxNewsItems {
			break
		}
	}
	return items, nil
}

// textOf flattens an HTML fragment to its visible text.
func textOf(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(b.String()), " ")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
