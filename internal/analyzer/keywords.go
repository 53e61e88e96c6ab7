package analyzer

import (
	"strings"

	"textlens/internal/domain/analysis"
)

const maxKeywords = 10

// Keywords extracts up to 10 noun-phrase-like candidates from the text:
// runs of capitalized words plus significant single tokens. Candidates
// are cleaned of surrounding punctuation and quotes, deduplicated
// case-insensitively keeping the first-seen casing, and dropped unless
// their normalized form actually appears in the lowercased source text.
func Keywords(text string) analysis.KeywordsResult {
	textLower := strings.ToLower(text)

	seen := map[string]bool{}
	keywords := []string{}
	add := func(candidate string) {
		if len(keywords) >= maxKeywords {
			return
		}
		cleaned := stripToken(candidate)
		if cleaned == "" {
			return
		}
		normalized := strings.ToLower(cleaned)
		if seen[normalized] {
			return
		}
		// Guards against artifacts introduced by the cleanup above.
		if !strings.Contains(textLower, normalized) {
			return
		}
		seen[normalized] = true
		keywords = append(keywords, cleaned)
	}

	for _, phrase := range capitalizedRuns(text) {
		// Sentence-initial "The", "It" and friends are runs too; skip them.
		if len(phrase) == 1 && isStopword(strings.ToLower(phrase[0])) {
			continue
		}
		add(strings.Join(phrase, " "))
	}
	for _, w := range words(text) {
		cleaned := stripToken(w)
		if len(cleaned) < 3 {
			continue
		}
		if isStopword(strings.ToLower(cleaned)) {
			continue
		}
		add(cleaned)
	}

	return analysis.KeywordsResult{Keywords: keywords}
}

// capitalizedRuns returns maximal runs of consecutive capitalized words,
// the closest thing to proper-noun phrases without a POS tagger.
func capitalizedRuns(text string) [][]string {
	ws := words(text)
	var runs [][]string
	var current []string
	for i, w := range ws {
		tok := stripToken(w)
		if isCapitalized(tok) {
			current = append(current, tok)
		} else if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
		if len(current) == 0 || !endsSentence(w) {
			continue
		}
		// A token that ended with sentence punctuation closes the run
		// even when the next word is capitalized. Title abbreviations
		// ("Dr.", "Mr.") keep the run open, as does a comma followed by
		// another capitalized word ("Acme, Inc.").
		if titles[strings.ToLower(tok)] {
			continue
		}
		if strings.HasSuffix(w, ",") && i+1 < len(ws) && isCapitalized(stripToken(ws[i+1])) {
			continue
		}
		runs = append(runs, current)
		current = nil
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

func isCapitalized(tok string) bool {
	if tok == "" {
		return false
	}
	r := rune(tok[0])
	return r >= 'A' && r <= 'Z'
}

func endsSentence(w string) bool {
	return strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") ||
		strings.HasSuffix(w, "?") || strings.HasSuffix(w, ":") ||
		strings.HasSuffix(w, ";") || strings.HasSuffix(w, ",")
}
