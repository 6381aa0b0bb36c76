package checkout

import "errors"

var (
	// ErrNoSession indicates the session slot is empty.
	ErrNoSession = errors.New("no checkout session")
	// ErrInvalidSession indicates a nil or incomplete session was given to Put.
	ErrInvalidSession = errors.New("invalid checkout session")
	// ErrStoreUnavailable wraps infrastructure failures of the backing store.
	ErrStoreUnavailable = errors.New("checkout session store unavailable")
)
