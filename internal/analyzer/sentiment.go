package analyzer

import (
	"fmt"

	"textlens/internal/domain/analysis"
)

// Sentiment scores text against the polarity lexicon. Deterministic, no
// external calls, never fails: empty or unmatched input comes back as
// neutral with zero scores.
func Sentiment(text string) analysis.SentimentResult {
	tokens := Tokenize(text)

	score := 0
	positive := []string{}
	negative := []string{}
	for _, tok := range tokens {
		v, ok := valences[tok]
		if !ok {
			continue
		}
		score += v
		if v > 0 {
			positive = append(positive, tok)
		} else {
			negative = append(negative, tok)
		}
	}

	comparative := 0.0
	if len(tokens) > 0 {
		comparative = float64(score) / float64(len(tokens))
	}

	label := "neutral"
	if score > 1 {
		label = "positive"
	} else if score < -1 {
		label = "negative"
	}

	explanation := fmt.Sprintf(
		"Score: %d (overall sentiment; positive = more positive words, negative = more negative words)\n"+
			"Comparative: %.3f (score divided by text length; helps compare long vs short texts)\n"+
			"This text is classified as %s.",
		score, comparative, label)

	return analysis.SentimentResult{
		Label:       label,
		Score:       score,
		Comparative: comparative,
		Positive:    positive,
		Negative:    negative,
		Explanation: explanation,
	}
}
