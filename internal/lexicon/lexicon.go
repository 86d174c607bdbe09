// Package lexicon holds the keyword and domain lists the heuristics run on.
// A Lexicon is built once at startup and only read afterwards.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Lexicon struct {
	// Classic scorer phrases, matched by substring presence.
	FakePhrases []string `yaml:"fake_phrases"`
	RealPhrases []string `yaml:"real_phrases"`

	// Regex scorer words, matched as whole words.
	NegativeWords []string `yaml:"negative_words"`
	PositiveWords []string `yaml:"positive_words"`

	// Explanation generator indicators, matched against cleaned tokens.
	FakeIndicators []string `yaml:"fake_indicators"`
	RealIndicators []string `yaml:"real_indicators"`

	// Hostname substrings for evidence trust tiers.
	GovernmentDomains []string `yaml:"government_domains"`
	MediaDomains      []string `yaml:"media_domains"`
}

func Default() *Lexicon {
	return &Lexicon{
		FakePhrases: []string{
			"shocking", "unbelievable", "secret", "they don't want you to know",
			"breaking", "urgent", "share before deleted", "mainstream media",
			"conspiracy", "cover-up", "exposed", "truth revealed", "wake up",
			"miracle", "cure", "100%", "guaranteed", "hoax", "scam",
		},
		RealPhrases: []string{
			"according to", "study shows", "research", "scientists",
			"officials", "confirmed", "reported", "announced", "statement",
			"evidence", "data", "analysis", "peer-reviewed",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "horrible", "fake", "false", "lie", "wrong",
			"misleading", "dangerous", "corrupt", "illegal", "evil",
		},
		PositiveWords: []string{
			"good", "great", "true", "correct", "verified", "confirmed", "accurate",
			"factual", "legitimate", "official", "proven", "safe",
		},
		FakeIndicators: []string{
			"shocking", "unbelievable", "secret", "breaking", "urgent",
			"conspiracy", "exposed", "truth", "hoax", "scam", "fake", "lie",
		},
		RealIndicators: []string{
			"according", "study", "research", "scientists", "officials",
			"confirmed", "reported", "evidence", "data", "analysis",
		},
		GovernmentDomains: []string{"gov.in", "nic.in", "pib.gov.in", ".gov"},
		MediaDomains: []string{
			"bbc.com", "reuters.com", "ndtv.com", "thehindu.com", "indianexpress.com",
			"timesofindia", "aniin.com", "pti.in",
		},
	}
}

// Load returns the default lexicon with any lists present in the YAML file at
// path replacing their defaults. An empty path returns the defaults.
func Load(path string) (*Lexicon, error) {
	lex := Default()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	merge(&lex.FakePhrases, override.FakePhrases)
	merge(&lex.RealPhrases, override.RealPhrases)
	merge(&lex.NegativeWords, override.NegativeWords)
	merge(&lex.PositiveWords, override.PositiveWords)
	merge(&lex.FakeIndicators, override.FakeIndicators)
	merge(&lex.RealIndicators, override.RealIndicators)
	merge(&lex.GovernmentDomains, override.GovernmentDomains)
	merge(&lex.MediaDomains, override.MediaDomains)
	return lex, nil
}

func merge(dst *[]string, src []string) {
	if len(src) == 0 {
		return
	}
	out := make([]string, 0, len(src))
	for _, s := range src {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	*dst = out
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
