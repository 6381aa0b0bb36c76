// Package lifecycle delivers application foreground/background
// transitions to subscribers.
//
// The platform layer publishes raw states (background, inactive,
// active); subscribers receive derived Transitions and typically react
// only to Foregrounded() ones. The subscription controller subscribes
// while a hosted-checkout payment is outstanding, so a user returning
// to the app triggers reconciliation without any interval polling.
package lifecycle
