package analysis

import "time"

// RecordID identifier type. Ids are assigned by the store and are
// strictly increasing in insertion order.
type RecordID int64

// Operation enum
type Operation string

const (
	OpSentiment Operation = "sentiment"
	OpSummary   Operation = "summary"
	OpKeywords  Operation = "keywords"
	OpEntities  Operation = "entities"
	OpClassify  Operation = "classify"
	OpChat      Operation = "chat"
)

// Valid reports whether op is one of the supported operations.
func (op Operation) Valid() bool {
	switch op {
	case OpSentiment, OpSummary, OpKeywords, OpEntities, OpClassify, OpChat:
		return true
	}
	return false
}

// Request is the transient input of a single analysis call.
type Request struct {
	InputText string    `json:"inputText"`
	Operation Operation `json:"operation"`
}

// Aggregate root: Record, one stored analysis.
// On records created by the dispatcher the Result shape always matches
// the Operation tag.
type Record struct {
	ID        RecordID  `json:"id"`
	InputText string    `json:"inputText"`
	Operation Operation `json:"operation"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch carries the fields of a partial record update. Nil fields are
// left untouched by the merge. The store does not re-check that Result
// still matches Operation after the merge; that is the caller's job.
type Patch struct {
	InputText *string
	Operation *Operation
	Result    Result
}
