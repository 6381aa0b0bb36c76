// Package checkout persists the single in-flight payment session marker.
//
// When the subscription controller obtains a hosted-checkout redirect,
// it records a Session {user ID, creation time} before control leaves
// the process. Reconciliation later loads the marker to decide whether
// the payment succeeded, is still pending, or timed out.
//
// The store is a single shared slot: at most one Session exists at a
// time, absence (ErrNoSession) is a normal state, and a corrupt
// persisted record is treated as absence rather than as a fatal error.
// Three implementations are provided: MemoryStore, FileStore (JSON
// record at a fixed path), and RedisStore (single fixed key).
package checkout
