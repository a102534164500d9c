package ledger

import "errors"

// Error kinds surfaced by the engine. Callers classify with errors.Is;
// everything else coming out of the store is treated as a server fault.
var (
	// ErrValidation marks a rejected input (blank required field,
	// non-positive amount, unknown reference).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an update aimed at a missing row. Deletes do
	// not return it: deleting a missing id is a successful no-op.
	ErrNotFound = errors.New("record not found")

	// ErrConflict marks a delete blocked by referencing rows, e.g. a
	// product that still appears in sales.
	ErrConflict = errors.New("referential conflict")
)
