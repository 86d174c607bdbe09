package services

import (
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/models"
)

const (
	maxExplainWords    = 50
	topExplainWords    = 10
	highlightThreshold = 0.1
	barScale           = 200
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

type ExplainService struct {
	lex *lexicon.Lexicon
	rnd RandomSource
}

// NewExplainService uses the process-wide random generator when rnd is nil,
// so identical inputs may highlight differently between calls.
func NewExplainService(lex *lexicon.Lexicon, rnd RandomSource) *ExplainService {
	if rnd == nil {
		rnd = globalSource{}
	}
	return &ExplainService{lex: lex, rnd: rnd}
}

func (s *ExplainService) Explain(text string) models.Explanation {
	words := strings.Fields(text)
	if len(words) > maxExplainWords {
		words = words[:maxExplainWords]
	}

	importance := make([]models.WordImportance, 0, len(words))
	for _, w := range words {
		importance = append(importance, s.weigh(w))
	}

	return models.Explanation{
		Words:       importance,
		Highlighted: highlight(importance),
		TopWords:    topBars(importance),
	}
}

func (s *ExplainService) weigh(word string) models.WordImportance {
	clean := lettersOnly(word)
	wi := models.WordImportance{Word: word, Polarity: models.PolarityNeutral}

	switch {
	case lexicon.ContainsAny(clean, s.lex.FakeIndicators):
		wi.Weight = 0.3 + s.rnd.Float64()*0.4
		wi.Polarity = models.PolarityNegative
	case lexicon.ContainsAny(clean, s.lex.RealIndicators):
		wi.Weight = -(0.3 + s.rnd.Float64()*0.4)
		wi.Polarity = models.PolarityPositive
	case len(clean) > 3:
		wi.Weight = (s.rnd.Float64() - 0.5) * 0.2
		if wi.Weight > 0 {
			wi.Polarity = models.PolarityNegative
		} else if wi.Weight < -0.05 {
			wi.Polarity = models.PolarityPositive
		}
	}
	return wi
}

func lettersOnly(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func highlight(words []models.WordImportance) []models.HighlightedWord {
	out := make([]models.HighlightedWord, 0, len(words))
	for _, w := range words {
		hw := models.HighlightedWord{Word: w.Word, Polarity: w.Polarity}
		abs := math.Abs(w.Weight)
		if abs >= highlightThreshold && w.Polarity != models.PolarityNeutral {
			intensity := math.Min(abs*2, 1)
			hw.Highlight = true
			hw.Intensity = strconv.FormatFloat(intensity, 'f', 2, 64)
			hw.LightText = intensity > 0.5
		}
		out = append(out, hw)
	}
	return out
}

func topBars(words []models.WordImportance) []models.BarEntry {
	ranked := make([]models.WordImportance, len(words))
	copy(ranked, words)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Weight) > math.Abs(ranked[j].Weight)
	})
	if len(ranked) > topExplainWords {
		ranked = ranked[:topExplainWords]
	}

	bars := make([]models.BarEntry, 0, len(ranked))
	for _, w := range ranked {
		fake := w.Weight > 0
		label := "Real indicator"
		if fake {
			label = "Fake indicator"
		}
		bars = append(bars, models.BarEntry{
			Word:     w.Word,
			Width:    int(math.Round(math.Abs(w.Weight) * barScale)),
			Percent:  strconv.FormatFloat(w.Weight*100, 'f', 1, 64),
			Label:    label,
			FakeSide: fake,
		})
	}
	return bars
}
