package analyzer

import (
	"math"
	"strings"
	"testing"
)

func TestSentimentPositive(t *testing.T) {
	res := Sentiment("I love this product")

	if res.Label != "positive" {
		t.Fatalf("expected positive, got %q", res.Label)
	}
	if res.Score != 3 {
		t.Fatalf("expected score 3, got %d", res.Score)
	}
	want := 3.0 / 4.0
	if math.Abs(res.Comparative-want) > 1e-9 {
		t.Fatalf("expected comparative %v, got %v", want, res.Comparative)
	}
	if len(res.Positive) != 1 || res.Positive[0] != "love" {
		t.Fatalf("unexpected positive words: %v", res.Positive)
	}
	if len(res.Negative) != 0 {
		t.Fatalf("unexpected negative words: %v", res.Negative)
	}
	if !strings.Contains(res.Explanation, "positive") {
		t.Fatalf("explanation missing label: %q", res.Explanation)
	}
	if !strings.Contains(res.Explanation, "Score: 3") {
		t.Fatalf("explanation missing score: %q", res.Explanation)
	}
}

func TestSentimentNegative(t *testing.T) {
	res := Sentiment("This is terrible and I hate it")

	if res.Label != "negative" {
		t.Fatalf("expected negative, got %q", res.Label)
	}
	if res.Score >= -1 {
		t.Fatalf("expected score < -1, got %d", res.Score)
	}
	if len(res.Negative) != 2 {
		t.Fatalf("expected two negative words, got %v", res.Negative)
	}
}

func TestSentimentLabelThresholds(t *testing.T) {
	// "like" alone scores 2 (> 1), "easy" alone scores 1 (neutral band),
	// "sorry" alone scores -1 (neutral band).
	cases := []struct {
		text  string
		label string
	}{
		{"like", "positive"},
		{"easy", "neutral"},
		{"sorry", "neutral"},
		{"hate", "negative"},
		{"completely ordinary text", "neutral"},
	}
	for _, c := range cases {
		if got := Sentiment(c.text).Label; got != c.label {
			t.Fatalf("%q: expected %q, got %q", c.text, c.label, got)
		}
	}
}

func TestSentimentEmptyText(t *testing.T) {
	res := Sentiment("")

	if res.Label != "neutral" {
		t.Fatalf("expected neutral, got %q", res.Label)
	}
	if res.Score != 0 || res.Comparative != 0 {
		t.Fatalf("expected zero scores, got score=%d comparative=%v", res.Score, res.Comparative)
	}
	if len(res.Positive) != 0 || len(res.Negative) != 0 {
		t.Fatalf("expected empty word lists, got %v / %v", res.Positive, res.Negative)
	}
}

func TestSentimentComparativeIsScoreOverTokens(t *testing.T) {
	text := "good good bad something else entirely"
	res := Sentiment(text)

	tokens := Tokenize(text)
	want := float64(res.Score) / float64(len(tokens))
	if math.Abs(res.Comparative-want) > 1e-9 {
		t.Fatalf("comparative %v != score/tokens %v", res.Comparative, want)
	}
}

func TestSentimentWordListsKeepAppearanceOrder(t *testing.T) {
	res := Sentiment("bad start but great finish, love it")

	if len(res.Positive) != 2 || res.Positive[0] != "great" || res.Positive[1] != "love" {
		t.Fatalf("unexpected positive order: %v", res.Positive)
	}
	if len(res.Negative) != 1 || res.Negative[0] != "bad" {
		t.Fatalf("unexpected negative list: %v", res.Negative)
	}
}
