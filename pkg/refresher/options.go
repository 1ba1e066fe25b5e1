package refresher

import (
	"log/slog"
	"time"

	"github.com/keyfold/otpkit/pkg/totp"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for per-tick generation failures.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithProvider sets the HMAC capability handed to every generation call
// whose options do not carry their own provider.
func WithProvider(p totp.HMACProvider) Option {
	return func(m *Manager) {
		if p != nil {
			m.provider = p
		}
	}
}

// WithInterval overrides the refresh cadence. The default of one second
// drives per-entry countdown displays; tests shorten it.
func WithInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithClock substitutes the time source used for generation timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
