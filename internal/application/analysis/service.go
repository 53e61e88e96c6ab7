package analysis

import (
	"context"
	"fmt"
	"strings"

	"textlens/internal/analyzer"
	domai "textlens/internal/domain/ai"
	domain "textlens/internal/domain/analysis"
)

const fallbackSummaryRunes = 200

// Service implements the analysis use-cases: dispatching a (text,
// operation) pair to the matching strategy and managing the history.
type Service struct {
	Store domain.Store
	Gen   domai.Generator
}

func NewService(store domain.Store, gen domai.Generator) *Service {
	return &Service{Store: store, Gen: gen}
}

//
// ==== USE CASES ====
//

// Run validates the operation and invokes the matching strategy exactly
// once. Unknown operations are rejected before any strategy is touched.
// Strategies own their fallback behavior, so Run only fails on invalid
// input, never on an external-service failure.
func (s *Service) Run(ctx context.Context, text string, op domain.Operation) (domain.Result, error) {
	switch op {
	case domain.OpSentiment:
		return analyzer.Sentiment(text), nil
	case domain.OpKeywords:
		return analyzer.Keywords(text), nil
	case domain.OpEntities:
		return analyzer.Entities(text), nil
	case domain.OpSummary:
		return s.summarize(ctx, text), nil
	case domain.OpClassify:
		return s.classify(ctx, text), nil
	case domain.OpChat:
		return s.chat(ctx, text), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedOperation, op)
	}
}

// AnalyzeAndStore runs the operation and appends the outcome to the
// history, returning the stored record.
func (s *Service) AnalyzeAndStore(ctx context.Context, text string, op domain.Operation) (*domain.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: inputText is required", domain.ErrInvalidRequest)
	}
	result, err := s.Run(ctx, text, op)
	if err != nil {
		return nil, err
	}
	rec := &domain.Record{
		InputText: text,
		Operation: op,
		Result:    result,
	}
	return s.Store.Append(ctx, rec)
}

// History returns all stored analyses in insertion order.
func (s *Service) History(ctx context.Context) ([]*domain.Record, error) {
	return s.Store.List(ctx)
}

// UpdateRecord shallow-merges a patch into a stored record.
func (s *Service) UpdateRecord(ctx context.Context, id domain.RecordID, patch domain.Patch) (*domain.Record, error) {
	return s.Store.Update(ctx, id, patch)
}

// DeleteRecord removes a record; absent ids are a no-op.
func (s *Service) DeleteRecord(ctx context.Context, id domain.RecordID) error {
	return s.Store.Delete(ctx, id)
}

//
// ==== LLM-BACKED STRATEGIES ====
//

// summarize asks for a 2-4 sentence paraphrase. When the gateway fails
// it degrades to a truncated prefix of the source text and flags the
// degraded mode in the note.
func (s *Service) summarize(ctx context.Context, text string) domain.SummaryResult {
	out, err := s.Gen.Generate(ctx, summaryPrompt(text))
	if err != nil {
		return domain.SummaryResult{
			Summary: truncateRunes(text, fallbackSummaryRunes) + "...",
			Note:    "Language model unavailable - using fallback summary.",
		}
	}
	return domain.SummaryResult{Summary: strings.TrimSpace(out)}
}

// classify parses the first reply line as the label and the remaining
// lines, joined, as the reason. Missing reason lines are an empty string.
func (s *Service) classify(ctx context.Context, text string) domain.ClassifyResult {
	out, err := s.Gen.Generate(ctx, classifyPrompt(text))
	if err != nil {
		return domain.ClassifyResult{Label: "other", Reason: "Fallback classifier."}
	}
	lines := strings.Split(out, "\n")
	label := strings.ToLower(strings.TrimSpace(lines[0]))
	reason := ""
	if len(lines) > 1 {
		reason = strings.TrimSpace(strings.Join(lines[1:], " "))
	}
	return domain.ClassifyResult{Label: label, Reason: reason}
}

func (s *Service) chat(ctx context.Context, text string) domain.ChatResult {
	out, err := s.Gen.Generate(ctx, chatPrompt(text))
	if err != nil {
		return domain.ChatResult{Reply: "The assistant is temporarily unavailable. Try again later!"}
	}
	return domain.ChatResult{Reply: strings.TrimSpace(out)}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
