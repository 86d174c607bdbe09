package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEvidenceService(baseURL string) *EvidenceService {
	return NewEvidenceService(http.DefaultClient, SearchConfig{
		BaseURL:        baseURL,
		APIKey:         "key",
		SearchEngineID: "cx",
	}, lexicon.Default(), zap.NewNop())
}

func TestClassify(t *testing.T) {
	s := newEvidenceService("")

	gov := s.Classify("t", "s", "https://pib.gov.in/story")
	assert.True(t, gov.IsGovt)
	assert.False(t, gov.IsTrusted)

	bbc := s.Classify("t", "s", "https://bbc.com/news/x")
	assert.False(t, bbc.IsGovt)
	assert.True(t, bbc.IsTrusted)

	upper := s.Classify("t", "s", "https://WWW.Reuters.COM/world")
	assert.True(t, upper.IsTrusted)

	for _, link := range []string{"http://%zz", "not a url", "", "https://example.com/a"} {
		e := s.Classify("t", "s", link)
		assert.False(t, e.IsGovt, link)
		assert.False(t, e.IsTrusted, link)
		assert.Equal(t, link, e.Link)
	}
}

func TestFetchEvidenceNormalizesAndClassifies(t *testing.T) {
	var gotQuery, gotKey, gotCX string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("key")
		gotCX = r.URL.Query().Get("cx")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"title":"Budget <b>announced</b>","snippet":"Official release","link":"https://pib.gov.in/story"},
			{"title":"","snippet":"","link":"http://%zz"},
			{"title":"BBC report","snippet":"AT&amp;T and others","link":"https://bbc.com/news/x"},
			{"title":"Blog","snippet":"opinion","link":"https://someblog.example/post"}
		]}`))
	}))
	defer srv.Close()

	evidence := newEvidenceService(srv.URL).FetchEvidence(context.Background(), "new digital budget")

	assert.Equal(t, "new digital budget", gotQuery)
	assert.Equal(t, "key", gotKey)
	assert.Equal(t, "cx", gotCX)

	require.Len(t, evidence, 4)
	assert.Equal(t, models.Evidence{Title: "Budget announced", Snippet: "Official release", Link: "https://pib.gov.in/story", IsGovt: true}, evidence[0])
	assert.Equal(t, models.Evidence{Title: "No title", Snippet: "No description available", Link: "http://%zz"}, evidence[1])
	assert.Equal(t, "AT&T and others", evidence[2].Snippet)
	assert.True(t, evidence[2].IsTrusted)
	assert.False(t, evidence[3].Trusted())
	assert.Equal(t, 2, models.CountTrusted(evidence))
}

func TestFetchEvidenceKeepsTenItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"items":[`
		for i := 0; i < 12; i++ {
			if i > 0 {
				body += ","
			}
			body += `{"title":"t","snippet":"s","link":"https://reuters.com/a"}`
		}
		_, _ = w.Write([]byte(body + `]}`))
	}))
	defer srv.Close()

	assert.Len(t, newEvidenceService(srv.URL).FetchEvidence(context.Background(), "q"), 10)
}

func TestFetchEvidenceAbsorbsFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"malformed json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items": [`))
		},
		"no items": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"searchInformation":{}}`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			evidence := newEvidenceService(srv.URL).FetchEvidence(context.Background(), "q")
			assert.NotNil(t, evidence)
			assert.Empty(t, evidence)
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		assert.Empty(t, newEvidenceService(url).FetchEvidence(context.Background(), "q"))
	})
}

func TestFetchEvidenceWithoutCredentialsSkipsCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	s := NewEvidenceService(http.DefaultClient, SearchConfig{BaseURL: srv.URL}, lexicon.Default(), zap.NewNop())
	assert.Empty(t, s.FetchEvidence(context.Background(), "q"))
	assert.Zero(t, atomic.LoadInt32(&calls))
}
