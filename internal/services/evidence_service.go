package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const maxEvidenceItems = 10

type SearchConfig struct {
	BaseURL        string
	APIKey         string
	SearchEngineID string
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

type EvidenceService struct {
	client *http.Client
	cfg    SearchConfig
	lex    *lexicon.Lexicon
	strip  *bluemonday.Policy
	logger *zap.Logger
}

func NewEvidenceService(client *http.Client, cfg SearchConfig, lex *lexicon.Lexicon, logger *zap.Logger) *EvidenceService {
	return &EvidenceService{
		client: client,
		cfg:    cfg,
		lex:    lex,
		strip:  bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// FetchEvidence runs one search for query. Any provider failure yields an
// empty slice; it never returns an error.
func (s *EvidenceService) FetchEvidence(ctx context.Context, query string) []models.Evidence {
	items, err := s.search(ctx, query)
	if err != nil {
		s.logger.Warn("evidence search failed", zap.Error(err))
		return []models.Evidence{}
	}

	if len(items.Items) > maxEvidenceItems {
		items.Items = items.Items[:maxEvidenceItems]
	}

	evidence := make([]models.Evidence, 0, len(items.Items))
	for _, item := range items.Items {
		evidence = append(evidence, s.Classify(s.clean(item.Title, "No title"), s.clean(item.Snippet, "No description available"), item.Link))
	}
	s.logger.Debug("evidence fetched",
		zap.Int("results", len(evidence)),
		zap.Int("trusted", models.CountTrusted(evidence)))
	return evidence
}

func (s *EvidenceService) search(ctx context.Context, query string) (*searchResponse, error) {
	if s.cfg.APIKey == "" || s.cfg.SearchEngineID == "" {
		return nil, fmt.Errorf("search credentials not configured")
	}

	params := url.Values{}
	params.Set("key", s.cfg.APIKey)
	params.Set("cx", s.cfg.SearchEngineID)
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search provider returned %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &out, nil
}

// Classify builds an evidence record and sets its trust flags from the link's
// hostname. A link that does not parse is simply untrusted.
func (s *EvidenceService) Classify(title, snippet, link string) models.Evidence {
	e := models.Evidence{Title: title, Snippet: snippet, Link: link}

	u, err := url.Parse(link)
	if err != nil {
		return e
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return e
	}
	e.IsGovt = lexicon.ContainsAny(host, s.lex.GovernmentDomains)
	e.IsTrusted = lexicon.ContainsAny(host, s.lex.MediaDomains)
	return e
}

func (s *EvidenceService) clean(v, fallback string) string {
	v = strings.TrimSpace(html.UnescapeString(s.strip.Sanitize(v)))
	if v == "" {
		return fallback
	}
	return v
}
