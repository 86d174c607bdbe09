package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/models"
)

const (
	neutralFakeScore = 0.4 // no indicator matched; leans real
	minFakeScore     = 0.01
	maxFakeScore     = 0.99
	maxRegexChars    = 1000
	negativeWeight   = 1.5
	positiveWeight   = 1.0
)

type ScorerService struct {
	lex      *lexicon.Lexicon
	negative []*regexp.Regexp
	positive []*regexp.Regexp
}

func NewScorerService(lex *lexicon.Lexicon) *ScorerService {
	return &ScorerService{
		lex:      lex,
		negative: wordPatterns(lex.NegativeWords),
		positive: wordPatterns(lex.PositiveWords),
	}
}

func wordPatterns(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

func (s *ScorerService) Predict(model models.ModelType, text string) models.Prediction {
	var score float64
	switch model {
	case models.ModelClassic:
		score = s.Classic(text)
	default:
		score = s.Regex(text)
	}
	return models.Prediction{FakeScore: score, Model: model}
}

// Classic counts each listed phrase at most once per side.
func (s *ScorerService) Classic(text string) float64 {
	lower := strings.ToLower(text)

	fakeHits, realHits := 0, 0
	for _, p := range s.lex.FakePhrases {
		if strings.Contains(lower, p) {
			fakeHits++
		}
	}
	for _, p := range s.lex.RealPhrases {
		if strings.Contains(lower, p) {
			realHits++
		}
	}

	if fakeHits+realHits == 0 {
		return neutralFakeScore
	}
	return clamp(float64(fakeHits) / float64(fakeHits+realHits))
}

// Regex counts every whole-word occurrence in the first 1000 characters.
func (s *ScorerService) Regex(text string) float64 {
	if r := []rune(text); len(r) > maxRegexChars {
		text = string(r[:maxRegexChars])
	}

	neg, pos := 0.0, 0.0
	for _, re := range s.negative {
		neg += float64(len(re.FindAllStringIndex(text, -1))) * negativeWeight
	}
	for _, re := range s.positive {
		pos += float64(len(re.FindAllStringIndex(text, -1))) * positiveWeight
	}

	if neg+pos == 0 {
		return neutralFakeScore
	}
	return clamp(neg / (neg + pos))
}

func clamp(p float64) float64 {
	if math.IsNaN(p) {
		return neutralFakeScore
	}
	return math.Min(math.Max(p, minFakeScore), maxFakeScore)
}
