// Package refresher drives the live TOTP countdown display of the vault: a
// Manager holds one periodic refresher per subscribed entry, recomputes the
// code every second and pushes {code, remaining, period} through the entry's
// callback.
//
// Subscriptions are keyed by entry id. Re-subscribing an id first tears the
// old refresher down, so duplicate refreshers for one entry cannot coexist.
// Unsubscribe is synchronous: once it returns, the callback will not fire
// again. Generation failures inside a tick are converted to a placeholder
// update instead of propagating, because a transient fault must not crash or
// unsubscribe a live display; the next tick retries from scratch.
package refresher
