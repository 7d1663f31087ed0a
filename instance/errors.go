// Package instance holds the immutable item catalogue and conflict graph
// for one DCKP instance.
//
// Errors:
//
//	ErrInvalidItemCount  - declared item count is not positive.
//	ErrInvalidCapacity   - declared capacity is not positive.
//	ErrTruncatedProfits  - fewer profit tokens than declared items.
//	ErrTruncatedWeights  - fewer weight tokens than declared items.
//	ErrIndexOutOfRange   - an item index is outside [0, n). The query
//	                       methods do not return it: HasConflict,
//	                       ConflictDegree and Conflicts answer false, 0 and
//	                       nil for such indices.
package instance

import "errors"

// Sentinel errors for instance loading and queries.
var (
	// ErrInvalidItemCount indicates n_items <= 0 in the instance header.
	ErrInvalidItemCount = errors.New("instance: item count must be positive")

	// ErrInvalidCapacity indicates capacity <= 0 in the instance header.
	ErrInvalidCapacity = errors.New("instance: capacity must be positive")

	// ErrTruncatedProfits indicates the file ended before n_items profits were read.
	ErrTruncatedProfits = errors.New("instance: truncated profits section")

	// ErrTruncatedWeights indicates the file ended before n_items weights were read.
	ErrTruncatedWeights = errors.New("instance: truncated weights section")

	// ErrIndexOutOfRange indicates an item index outside [0, n_items). No
	// function in this package currently returns it.
	ErrIndexOutOfRange = errors.New("instance: item index out of range")
)
