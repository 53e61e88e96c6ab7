package analysis

import "context"

// Store port for the analysis history. The backing collection lives in
// process memory only; a restart discards all history by design.
type Store interface {
	// Append assigns a fresh id strictly greater than every id handed
	// out before, stamps CreatedAt and inserts at the end. Returns the
	// stored record.
	Append(ctx context.Context, rec *Record) (*Record, error)
	// List returns a snapshot of all records in insertion order.
	List(ctx context.Context) ([]*Record, error)
	// Update shallow-merges patch into the record with the given id and
	// returns the merged record, or ErrNotFound.
	Update(ctx context.Context, id RecordID, patch Patch) (*Record, error)
	// Delete removes the record if present; absent ids are a no-op.
	Delete(ctx context.Context, id RecordID) error
}
