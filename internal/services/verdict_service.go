package services

import "github.com/latestcomment/truthlens/internal/models"

const styleFakeThreshold = 0.5

var verdictTable = map[[2]bool]models.Verdict{
	// {isStyleFake, hasEvidence}
	{false, true}: {
		Label:       models.VerdictVerifiedReal,
		Color:       "green",
		Explanation: "✅ Verified by trusted sources with professional writing style.",
	},
	{false, false}: {
		Label:       models.VerdictPotentialHoax,
		Color:       "amber",
		Explanation: "⚠️ Professional writing style, but NO evidence found in trusted sources.",
	},
	{true, true}: {
		Label:       models.VerdictSensationalized,
		Color:       "yellow",
		Explanation: "ℹ️ Facts confirmed by sources, but the writing style is sensational/clickbait.",
	},
	{true, false}: {
		Label:       models.VerdictConfirmedFake,
		Color:       "red",
		Explanation: "⛔ Suspicious writing style and zero evidence found in trusted sources.",
	},
}

// DetermineVerdict combines the style score with the trusted evidence tally.
func DetermineVerdict(fakeScore float64, trustedEvidenceCount int) models.Verdict {
	return verdictTable[[2]bool{fakeScore >= styleFakeThreshold, trustedEvidenceCount > 0}]
}
