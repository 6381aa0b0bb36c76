// Package notify carries outcome events from the subscription core to
// the presentation layer.
//
// The core classifies outcomes (payment confirmed, payment expired,
// plan changed) and attaches machine-readable remediation hints; all
// user-facing wording and rendering belongs to the caller.
package notify
