package services

import (
	"math"
	"strings"
	"testing"

	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/stretchr/testify/assert"
)

func newScorer() *ScorerService {
	return NewScorerService(lexicon.Default())
}

func TestClassicNoIndicatorsIsNeutral(t *testing.T) {
	assert.Equal(t, 0.4, newScorer().Classic("The cat sat on the mat near the window."))
}

func TestClassicCountsPresenceNotOccurrences(t *testing.T) {
	s := newScorer()

	// "shocking" twice still counts once; "research" once.
	assert.InDelta(t, 0.5, s.Classic("Shocking! SHOCKING research into tides."), 1e-9)

	// fake: shocking, secret; real: officials
	assert.InDelta(t, 2.0/3.0, s.Classic("A shocking secret, officials say."), 1e-9)
}

func TestClassicClamps(t *testing.T) {
	s := newScorer()
	assert.Equal(t, 0.99, s.Classic("This hoax is a scam"))
	assert.Equal(t, 0.01, s.Classic("According to officials the data was confirmed"))
}

func TestClassicOverlappingPhrases(t *testing.T) {
	// "truth revealed" and "wake up" both hit; nothing on the real side.
	assert.Equal(t, 0.99, newScorer().Classic("wake up, the truth revealed"))
}

func TestRegexNoSentimentIsNeutral(t *testing.T) {
	assert.Equal(t, 0.4, newScorer().Regex("The train left the station at noon today."))
}

func TestRegexWeightsOccurrences(t *testing.T) {
	s := newScorer()

	// neg: bad x2 = 3.0; pos: good = 1.0
	assert.InDelta(t, 0.75, s.Regex("bad, Bad and good"), 1e-9)

	// neg: lie = 1.5; pos: true, verified, safe = 3.0
	assert.InDelta(t, 1.5/4.5, s.Regex("It is true, verified and safe, no lie."), 1e-9)
}

func TestRegexMatchesWholeWordsOnly(t *testing.T) {
	// "badge", "goodness" and "falsehood" are not sentiment words.
	assert.Equal(t, 0.4, newScorer().Regex("badge goodness falsehood"))
}

func TestRegexTruncatesInput(t *testing.T) {
	text := strings.Repeat("x", 1000) + " terrible"
	assert.Equal(t, 0.4, newScorer().Regex(text))

	text = strings.Repeat("é", 995) + " bad"
	assert.Equal(t, 0.99, newScorer().Regex(text))
}

func TestScoresStayInRange(t *testing.T) {
	s := newScorer()
	inputs := []string{
		"",
		"   ",
		"fake fake fake fake",
		"verified verified good",
		"100% guaranteed miracle cure",
		"according to research, scientists confirmed the data analysis",
		strings.Repeat("evil ", 500),
		"Ünïcödé wörds with no signal at all",
	}
	for _, in := range inputs {
		for _, m := range []models.ModelType{models.ModelClassic, models.ModelDeepLearning} {
			p := s.Predict(m, in).FakeScore
			assert.False(t, math.IsNaN(p), in)
			assert.GreaterOrEqual(t, p, 0.01, in)
			assert.LessOrEqual(t, p, 0.99, in)
		}
	}
}

func TestPredictDispatchesOnModel(t *testing.T) {
	s := newScorer()
	text := "The shocking report was verified and true"

	assert.Equal(t, s.Classic(text), s.Predict(models.ModelClassic, text).FakeScore)
	assert.Equal(t, s.Regex(text), s.Predict(models.ModelDeepLearning, text).FakeScore)
	assert.Equal(t, models.ModelClassic, s.Predict(models.ParseModelType("classic"), text).Model)
	assert.Equal(t, models.ModelDeepLearning, s.Predict(models.ParseModelType("transformer"), text).Model)
}

func TestPredictionLabel(t *testing.T) {
	assert.Equal(t, "FAKE", models.Prediction{FakeScore: 0.5}.Label())
	assert.Equal(t, "REAL", models.Prediction{FakeScore: 0.49}.Label())
}
