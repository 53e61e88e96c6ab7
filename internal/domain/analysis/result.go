package analysis

import (
	"encoding/json"
	"fmt"
)

// Result is the closed union of per-operation result shapes. Every
// variant reports the operation it belongs to; the dispatcher switches
// exhaustively over Operation, so an unknown operation can never
// produce an untagged payload.
type Result interface {
	Kind() Operation
}

// SentimentResult value object
type SentimentResult struct {
	Label       string   `json:"label"`
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Explanation string   `json:"explanation"`
}

func (SentimentResult) Kind() Operation { return OpSentiment }

// SummaryResult value object. Note is set only when the language model
// was unavailable and the summary is a truncated fallback.
type SummaryResult struct {
	Summary string `json:"summary"`
	Note    string `json:"note,omitempty"`
}

func (SummaryResult) Kind() Operation { return OpSummary }

// KeywordsResult value object
type KeywordsResult struct {
	Keywords []string `json:"keywords"`
}

func (KeywordsResult) Kind() Operation { return OpKeywords }

// EntitiesResult value object
type EntitiesResult struct {
	People        []string `json:"people"`
	Places        []string `json:"places"`
	Organizations []string `json:"organizations"`
}

func (EntitiesResult) Kind() Operation { return OpEntities }

// ClassifyResult value object
type ClassifyResult struct {
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

func (ClassifyResult) Kind() Operation { return OpClassify }

// ChatResult value object
type ChatResult struct {
	Reply string `json:"reply"`
}

func (ChatResult) Kind() Operation { return OpChat }

// DecodeResult unmarshals a raw result payload into the variant that
// belongs to op. Used at the HTTP boundary where results arrive as
// opaque JSON.
func DecodeResult(op Operation, data []byte) (Result, error) {
	var (
		res Result
		err error
	)
	switch op {
	case OpSentiment:
		var v SentimentResult
		err = json.Unmarshal(data, &v)
		res = v
	case OpSummary:
		var v SummaryResult
		err = json.Unmarshal(data, &v)
		res = v
	case OpKeywords:
		var v KeywordsResult
		err = json.Unmarshal(data, &v)
		res = v
	case OpEntities:
		var v EntitiesResult
		err = json.Unmarshal(data, &v)
		res = v
	case OpClassify:
		var v ClassifyResult
		err = json.Unmarshal(data, &v)
		res = v
	case OpChat:
		var v ChatResult
		err = json.Unmarshal(data, &v)
		res = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: result does not match operation %q: %v", ErrInvalidRequest, op, err)
	}
	return res, nil
}
