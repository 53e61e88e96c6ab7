package analyzer

import "strings"

// Tokenize lowercases the text and splits it into word tokens.
// Apostrophes are kept so contractions stay single tokens; every other
// non-alphanumeric rune acts as a separator.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '\'':
			return false
		}
		return true
	})
}

// words splits the original text on whitespace, keeping casing and
// punctuation. Used by the keyword and entity extractors, which care
// about capitalization.
func words(text string) []string {
	return strings.Fields(text)
}

// stripToken removes quotes and parentheses anywhere in the token and
// leading/trailing sentence punctuation, mirroring the cleanup the
// keyword extractor applies to candidates.
func stripToken(tok string) string {
	tok = strings.Map(func(r rune) rune {
		switch r {
		case '"', '“', '”', '(', ')':
			return -1
		}
		return r
	}, tok)
	tok = strings.TrimLeft(tok, ".,!?;:")
	tok = strings.TrimRight(tok, ".,!?;:")
	return strings.TrimSpace(tok)
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "when": true, "while": true,
	"of": true, "to": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "about": true, "into": true, "over": true,
	"after": true, "before": true, "between": true, "under": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "can": true, "could": true, "should": true, "shall": true,
	"may": true, "might": true, "must": true, "not": true, "no": true,
	"nor": true, "so": true, "too": true, "very": true, "just": true,
	"than": true, "that": true, "this": true, "these": true, "those": true,
	"it": true, "its": true, "he": true, "she": true, "they": true,
	"them": true, "his": true, "her": true, "their": true, "our": true,
	"we": true, "you": true, "your": true, "i": true, "me": true, "my": true,
	"what": true, "which": true, "who": true, "whom": true, "how": true,
	"where": true, "why": true, "there": true, "here": true, "all": true,
	"any": true, "some": true, "each": true, "both": true, "more": true,
	"most": true, "other": true, "such": true, "only": true, "own": true,
	"same": true, "as": true, "from": true, "up": true, "down": true,
	"out": true, "off": true, "again": true, "further": true, "once": true,
	"also": true, "now": true, "get": true, "got": true, "one": true,
	"two": true, "us": true, "him": true, "because": true, "until": true,
	"during": true, "through": true, "against": true, "above": true,
	"below": true, "few": true, "lot": true, "much": true, "many": true,
	"don't": true, "doesn't": true, "didn't": true, "won't": true,
	"isn't": true, "aren't": true, "wasn't": true, "it's": true,
	"i'm": true, "i've": true, "you're": true, "we're": true,
	"they're": true, "there's": true, "that's": true,
}

// isStopword reports whether the lowercase token is a function word.
func isStopword(tok string) bool { return stopwords[tok] }
