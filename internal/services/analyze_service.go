package services

import (
	"context"
	"errors"
	"time"

	"github.com/latestcomment/truthlens/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrTextRequired = errors.New("text is required")

// EvidenceFetcher is satisfied by *EvidenceService.
type EvidenceFetcher interface {
	FetchEvidence(ctx context.Context, query string) []models.Evidence
}

type AnalyzeService struct {
	Scorer   *ScorerService
	Evidence EvidenceFetcher
	logger   *zap.Logger
}

func NewAnalyzeService(scorer *ScorerService, evidence EvidenceFetcher, logger *zap.Logger) *AnalyzeService {
	return &AnalyzeService{Scorer: scorer, Evidence: evidence, logger: logger}
}

// Analyze scores text and looks up corroborating sources concurrently, then
// combines both into a verdict. Text that fails validation short-circuits to
// the invalid-sentence result without touching the network.
func (s *AnalyzeService) Analyze(ctx context.Context, text string, model models.ModelType) (models.Analysis, error) {
	if text == "" {
		return models.Analysis{}, ErrTextRequired
	}
	if !IsValidSentence(text) {
		return InvalidSentence(), nil
	}

	start := time.Now()
	var (
		prediction models.Prediction
		evidence   []models.Evidence
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prediction = s.Scorer.Predict(model, text)
		return nil
	})
	g.Go(func() error {
		evidence = s.Evidence.FetchEvidence(gctx, text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Analysis{}, err
	}
	if evidence == nil {
		evidence = []models.Evidence{}
	}

	trusted := models.CountTrusted(evidence)
	verdict := DetermineVerdict(prediction.FakeScore, trusted)

	s.logger.Info("analysis complete",
		zap.String("model", model.String()),
		zap.Float64("score", prediction.FakeScore),
		zap.Int("evidence", len(evidence)),
		zap.Int("trusted", trusted),
		zap.String("verdict", string(verdict.Label)),
		zap.Duration("took", time.Since(start)))

	return models.Analysis{
		AIScore:            prediction.FakeScore,
		AILabel:            prediction.Label(),
		EvidenceCount:      trusted,
		FinalVerdict:       verdict.Label,
		UIColor:            verdict.Color,
		VerdictExplanation: verdict.Explanation,
		Evidence:           evidence,
	}, nil
}
