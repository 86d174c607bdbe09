package services

import (
	"strings"
	"unicode/utf8"

	"github.com/latestcomment/truthlens/internal/models"
)

const (
	minTextChars = 20
	minTextWords = 3

	invalidDescription = "The input is too short or meaningless to analyze. Please enter a complete news headline or paragraph."
)

func IsValidSentence(text string) bool {
	trimmed := strings.TrimSpace(text)
	return utf8.RuneCountInString(trimmed) >= minTextChars && len(strings.Fields(trimmed)) >= minTextWords
}

func InvalidSentence() models.Analysis {
	return models.Analysis{
		AIScore:            0,
		AILabel:            "UNKNOWN",
		EvidenceCount:      0,
		FinalVerdict:       models.VerdictNotValidSentence,
		UIColor:            "gray",
		VerdictExplanation: "Input invalid.",
		Description:        invalidDescription,
		Evidence:           []models.Evidence{},
	}
}
