package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	calls    int32
	evidence []models.Evidence
}

func (f *fakeFetcher) FetchEvidence(ctx context.Context, query string) []models.Evidence {
	atomic.AddInt32(&f.calls, 1)
	return f.evidence
}

func newAnalyzer(f EvidenceFetcher) *AnalyzeService {
	return NewAnalyzeService(NewScorerService(lexicon.Default()), f, zap.NewNop())
}

func TestAnalyzeInvalidInputSkipsFetch(t *testing.T) {
	f := &fakeFetcher{}
	s := newAnalyzer(f)

	for _, text := range []string{"ab", "ok go now", "     "} {
		got, err := s.Analyze(context.Background(), text, models.ModelDeepLearning)
		require.NoError(t, err)
		assert.Equal(t, models.VerdictNotValidSentence, got.FinalVerdict, text)
	}
	assert.Zero(t, atomic.LoadInt32(&f.calls))

	_, err := s.Analyze(context.Background(), "", models.ModelDeepLearning)
	assert.ErrorIs(t, err, ErrTextRequired)
	assert.Zero(t, atomic.LoadInt32(&f.calls))
}

func TestAnalyzeValidInputInvokesScoring(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &fakeFetcher{}
	got, err := newAnalyzer(f).Analyze(context.Background(), "This is a twenty-char test!!", models.ModelDeepLearning)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
	assert.Equal(t, 0.4, got.AIScore)
	assert.Equal(t, "REAL", got.AILabel)
	assert.Equal(t, models.VerdictPotentialHoax, got.FinalVerdict)
	assert.NotNil(t, got.Evidence)
}

func TestAnalyzeVerdicts(t *testing.T) {
	defer goleak.VerifyNone(t)

	trusted := []models.Evidence{
		{Title: "PIB", Link: "https://pib.gov.in/x", IsGovt: true},
		{Title: "Blog", Link: "https://blog.example/x"},
	}

	cases := []struct {
		name     string
		text     string
		model    models.ModelType
		evidence []models.Evidence
		verdict  models.VerdictLabel
		color    string
		count    int
	}{
		{
			name:     "verified real",
			text:     "The government of India officially announced the new digital budget verified safe.",
			model:    models.ModelDeepLearning,
			evidence: trusted,
			verdict:  models.VerdictVerifiedReal,
			color:    "green",
			count:    1,
		},
		{
			name:    "potential hoax",
			text:    "The verified good amazing miracle safe cure found on Mars today.",
			model:   models.ModelDeepLearning,
			verdict: models.VerdictPotentialHoax,
			color:   "amber",
		},
		{
			name:     "sensationalized",
			text:     "SHOCKING secret budget exposed, share before deleted!",
			model:    models.ModelClassic,
			evidence: trusted,
			verdict:  models.VerdictSensationalized,
			color:    "yellow",
			count:    1,
		},
		{
			name:    "confirmed fake",
			text:    "The terrible bad illegal government lie about aliens attacking earth.",
			model:   models.ModelDeepLearning,
			verdict: models.VerdictConfirmedFake,
			color:   "red",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newAnalyzer(&fakeFetcher{evidence: tc.evidence}).Analyze(context.Background(), tc.text, tc.model)
			require.NoError(t, err)
			assert.Equal(t, tc.verdict, got.FinalVerdict)
			assert.Equal(t, tc.color, got.UIColor)
			assert.Equal(t, tc.count, got.EvidenceCount)
			assert.Len(t, got.Evidence, len(tc.evidence))
		})
	}
}
