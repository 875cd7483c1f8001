package injuries

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Phrases are stored in normalized token form, so "DAY-TO-DAY" and
// "DAY_TO_DAY" both become "DAY TO DAY".
var outPhrases = normalizePhrases(
	"OUT", "IR", "SUSPENSION", "PUP", "COVID-19", "INJURED RESERVE", "INJURY_RESERVE",
)

var questionablePhrases = normalizePhrases(
	"Q", "QUESTIONABLE", "D", "DOUBTFUL", "P", "PROBABLE", "DAY-TO-DAY",
)

// Classify maps a free-text provider status into a Status bucket.
// Matching is by whole token or whole phrase; "out" vocabulary is checked
// before "questionable", and anything unrecognized is healthy.
func Classify(raw string) Status {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return StatusHealthy
	}
	if containsAny(tokens, outPhrases) {
		return StatusOut
	}
	if containsAny(tokens, questionablePhrases) {
		return StatusQuestionable
	}
	return StatusHealthy
}

func tokenize(raw string) []string {
	// Casers keep state, so each call gets its own.
	s := cases.Upper(language.Und).String(norm.NFKC.String(raw))
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalizePhrases(phrases ...string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, tokenize(p))
	}
	return out
}

func containsAny(tokens []string, phrases [][]string) bool {
	for _, phrase := range phrases {
		if containsPhrase(tokens, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, word := range phrase {
			if tokens[i+j] != word {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
