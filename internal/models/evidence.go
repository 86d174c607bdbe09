package models

type Evidence struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Link      string `json:"link"`
	IsGovt    bool   `json:"isGovt"`    // hostname matched a government domain
	IsTrusted bool   `json:"isTrusted"` // hostname matched a trusted media outlet
}

// Trusted reports whether the record counts toward the verdict's evidence tally.
func (e Evidence) Trusted() bool {
	return e.IsGovt || e.IsTrusted
}

func CountTrusted(evidence []Evidence) int {
	n := 0
	for _, e := range evidence {
		if e.Trusted() {
			n++
		}
	}
	return n
}
