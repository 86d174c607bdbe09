package models

type Polarity string

const (
	PolarityPositive Polarity = "positive" // pushes toward real
	PolarityNegative Polarity = "negative" // pushes toward fake
	PolarityNeutral  Polarity = "neutral"
)

type WordImportance struct {
	Word     string   `json:"word"`
	Weight   float64  `json:"weight"`
	Polarity Polarity `json:"type"`
}

type HighlightedWord struct {
	Word      string
	Polarity  Polarity
	Highlight bool
	Intensity string // background alpha, formatted for CSS
	LightText  bool
}

type BarEntry struct {
	Word     string
	Width    int    // pixels
	Percent  string // signed weight x100, one decimal
	Label    string // "Fake indicator" or "Real indicator"
	FakeSide bool
}

type Explanation struct {
	Words       []WordImportance
	Highlighted []HighlightedWord
	TopWords    []BarEntry
}
