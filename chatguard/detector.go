package chatguard

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"neuroview/errors"
)

// Detector wraps an Aho-Corasick automaton built over a lowercased keyword
// list. A match anywhere in the (lowercased) input counts, so multi-word
// phrases like "severe headache" behave as substring patterns.
type Detector struct {
	matcher *goahocorasick.Machine
}

func NewDetector(keywords []string) (*Detector, error) {
	patterns := make([][]rune, 0, len(keywords))
	for _, word := range keywords {
		if strings.TrimSpace(word) == "" {
			continue
		}
		patterns = append(patterns, lowerRunes(word))
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Detector{matcher: m}, nil
}

// Matches reports whether any keyword occurs in the text.
func (d *Detector) Matches(text string) bool {
	runes := lowerRunes(text)
	if len(runes) == 0 {
		return false
	}
	return len(d.matcher.MultiPatternSearch(runes, true)) > 0
}

func lowerRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}
