package models

import "strings"

type ModelType int

const (
	ModelDeepLearning ModelType = iota // regex sentiment scorer, the default
	ModelClassic                       // keyword phrase scorer
)

// ParseModelType maps the request's model_type field. Only "classic" selects
// the classic scorer; every other value falls back to the default.
func ParseModelType(s string) ModelType {
	if strings.EqualFold(strings.TrimSpace(s), "classic") {
		return ModelClassic
	}
	return ModelDeepLearning
}

func (m ModelType) String() string {
	if m == ModelClassic {
		return "classic"
	}
	return "deep_learning"
}

type Prediction struct {
	FakeScore float64   `json:"fake_score"` // always within [0.01, 0.99]
	Model     ModelType `json:"-"`
}

func (p Prediction) Label() string {
	if p.FakeScore >= 0.5 {
		return "FAKE"
	}
	return "REAL"
}
