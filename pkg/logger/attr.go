package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// Tier records a subscription tier under the key "tier".
func Tier(tier string) slog.Attr {
	if tier == "" {
		return slog.Attr{}
	}
	return slog.String("tier", tier)
}

// PollerState records the reconciliation poller state under the key "poller_state".
func PollerState(state string) slog.Attr {
	if state == "" {
		return slog.Attr{}
	}
	return slog.String("poller_state", state)
}
