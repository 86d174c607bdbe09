package models

type VerdictLabel string

const (
	VerdictVerifiedReal     VerdictLabel = "VERIFIED REAL"
	VerdictPotentialHoax    VerdictLabel = "POTENTIAL HOAX"
	VerdictSensationalized  VerdictLabel = "SENSATIONALIZED"
	VerdictConfirmedFake    VerdictLabel = "CONFIRMED FAKE"
	VerdictNotValidSentence VerdictLabel = "NOT A VALID SENTENCE"
)

type Verdict struct {
	Label       VerdictLabel `json:"final_verdict"`
	Color       string       `json:"ui_color"` // green, amber, yellow, red or gray
	Explanation string       `json:"verdict_explanation"`
}

type Analysis struct {
	AIScore            float64      `json:"ai_score"`
	AILabel            string       `json:"ai_label"` // FAKE, REAL or UNKNOWN
	EvidenceCount      int          `json:"evidence_count"`
	FinalVerdict       VerdictLabel `json:"final_verdict"`
	UIColor            string       `json:"ui_color"`
	VerdictExplanation string       `json:"verdict_explanation"`
	Description        string       `json:"description,omitempty"`
	Evidence           []Evidence   `json:"evidence"`
}
