package checkout

import "context"

// Store persists the single checkout session slot.
//
// Get returns ErrNoSession when the slot is empty; absence is a valid,
// non-error state for callers. Implementations treat an unparseable
// persisted record as an empty slot rather than failing: a corrupt
// marker must never wedge the payment flow. Writes are last-writer-wins.
type Store interface {
	Get(ctx context.Context) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context) error
}
