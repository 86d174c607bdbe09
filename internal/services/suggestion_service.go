package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	minSuggestQuery = 2
	maxSuggestions  = 8
	suggestUA       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

type SuggestionService struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewSuggestionService(client *http.Client, baseURL string, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{client: client, baseURL: baseURL, logger: logger}
}

// Suggest returns at most eight completions and an empty slice on any failure.
func (s *SuggestionService) Suggest(ctx context.Context, query string) []string {
	if utf8.RuneCountInString(query) < minSuggestQuery {
		return []string{}
	}
	out, err := s.fetch(ctx, query)
	if err != nil {
		s.logger.Warn("suggestions failed", zap.Error(err))
		return []string{}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func (s *SuggestionService) fetch(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build suggest request: %w", err)
	}
	req.Header.Set("User-Agent", suggestUA)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read suggest response: %w", err)
	}

	// Shape: ["query", ["completion", ...], ...]
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode suggest response: %w", err)
	}
	if len(raw) < 2 {
		return []string{}, nil
	}
	var completions []string
	if err := json.Unmarshal(raw[1], &completions); err != nil {
		return nil, fmt.Errorf("decode suggest completions: %w", err)
	}
	if completions == nil {
		completions = []string{}
	}
	return completions, nil
}
