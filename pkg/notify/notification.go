package notify

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the notification severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Remediation hints tell the presentation layer what follow-up action to
// offer. The core never formats user-facing copy; it only classifies.
const (
	// RemediationReauthenticate asks the user to sign in again. Raised
	// after a confirmed upgrade, since the subscription grant may
	// require a fresh session token.
	RemediationReauthenticate = "reauthenticate"
	// RemediationRetryPayment suggests restarting the checkout after an
	// abandoned or timed-out payment.
	RemediationRetryPayment = "retry_payment"
)

// Notification is a single event surfaced to the presentation layer.
type Notification struct {
	ID          string
	UserID      string
	Type        Type
	Title       string
	Message     string
	Remediation string // optional follow-up hint, see Remediation constants
	Read        bool
	CreatedAt   time.Time
}

// New creates a notification with a fresh ID and timestamp.
func New(userID string, typ Type, title, message string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// WithRemediation returns a copy carrying the given remediation hint.
func (n Notification) WithRemediation(hint string) Notification {
	n.Remediation = hint
	return n
}
