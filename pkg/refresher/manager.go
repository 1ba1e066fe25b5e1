package refresher

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/keyfold/otpkit/pkg/logger"
	"github.com/keyfold/otpkit/pkg/totp"
)

// DefaultInterval is the refresh cadence driving countdown displays.
const DefaultInterval = time.Second

// Update is one delivery to a subscription callback. On a generation failure
// Code is a dashed placeholder, Remaining is zero and Err carries the cause;
// the next tick retries from scratch.
type Update struct {
	Code      string
	Remaining int
	Period    int
	Err       error
}

// Callback receives updates for one vault entry. It is invoked from the
// subscription's own goroutine, once immediately after Subscribe and then on
// every tick; it must not block for longer than the refresh interval.
type Callback func(Update)

// Manager multiplexes live TOTP refreshers, one per subscribed vault entry.
// All state lives in the Manager instance; construct one per vault session
// and Close it when the session ends. All methods are safe for concurrent
// use.
type Manager struct {
	mu     sync.Mutex
	subs   map[string]*subscription
	closed bool

	log      *slog.Logger
	provider totp.HMACProvider
	interval time.Duration
	now      func() time.Time
}

// subscription owns exactly one refresher goroutine.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Manager. Without options it refreshes every second, computes
// HMACs locally and logs nowhere.
func New(opts ...Option) *Manager {
	m := &Manager{
		subs:     make(map[string]*subscription),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		provider: totp.StdHMACProvider{},
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe starts a refresher for entryID that generates a code from secret
// and delivers it through cb, immediately and then once per interval. An
// existing refresher for the same entryID is torn down first, so at most one
// refresher per id ever runs. The zero fields of opts take the package
// defaults on every tick.
func (m *Manager) Subscribe(entryID, secret string, cb Callback, opts totp.Options) error {
	if entryID == "" {
		return ErrEmptyEntryID
	}
	if cb == nil {
		return ErrNilCallback
	}

	// Idempotent re-subscribe: the previous refresher must be fully stopped
	// before the replacement starts, otherwise two goroutines could deliver
	// interleaved updates for the same entry. The wait happens with the
	// mutex released, because the old refresher's callback may itself be
	// inside a Manager method; the loop re-checks the map afterwards in
	// case a racing Subscribe installed its own replacement meanwhile.
	m.mu.Lock()
	for {
		if m.closed {
			m.mu.Unlock()
			return ErrManagerClosed
		}
		prev, ok := m.subs[entryID]
		if !ok {
			break
		}
		delete(m.subs, entryID)
		m.mu.Unlock()
		prev.stop()
		m.mu.Lock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription{cancel: cancel, done: make(chan struct{})}
	m.subs[entryID] = sub
	m.mu.Unlock()

	go m.run(ctx, sub, entryID, secret, cb, opts)
	return nil
}

// Unsubscribe stops the refresher for entryID and waits for its goroutine to
// exit: after Unsubscribe returns, cb is never invoked again. Unknown ids
// are a no-op.
func (m *Manager) Unsubscribe(entryID string) {
	m.mu.Lock()
	sub, ok := m.subs[entryID]
	if ok {
		delete(m.subs, entryID)
	}
	m.mu.Unlock()

	if ok {
		sub.stop()
	}
}

// Clear stops every refresher. The Manager remains usable afterwards.
func (m *Manager) Clear() {
	m.mu.Lock()
	subs := m.subs
	m.subs = make(map[string]*subscription)
	m.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

// Close clears all subscriptions and rejects future ones. Safe to call more
// than once.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	subs := m.subs
	m.subs = make(map[string]*subscription)
	m.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

// Len returns the number of active subscriptions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

func (s *subscription) stop() {
	s.cancel()
	<-s.done
}

// run is the refresher loop: one delivery up front, then one per tick until
// cancellation. A single goroutine per subscription keeps ticks for the same
// entry strictly sequential.
func (m *Manager) run(ctx context.Context, sub *subscription, entryID, secret string, cb Callback, opts totp.Options) {
	defer close(sub.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.deliver(ctx, entryID, secret, cb, opts)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.deliver(ctx, entryID, secret, cb, opts)
		}
	}
}

// deliver generates one code and pushes it to the callback. Failures never
// propagate to the subscriber: a live countdown must keep running through a
// transient fault, so the callback gets a placeholder value instead and the
// next tick starts over.
func (m *Manager) deliver(ctx context.Context, entryID, secret string, cb Callback, opts totp.Options) {
	if opts.Provider == nil {
		opts.Provider = m.provider
	}
	opts.Timestamp = m.now()

	code, err := totp.Generate(ctx, secret, opts)
	if ctx.Err() != nil {
		// Cancelled while generating; the subscriber is gone.
		return
	}
	if err != nil {
		m.log.WarnContext(ctx, "totp generation failed",
			logger.EntryID(entryID),
			logger.Error(err))
		period := opts.Period
		if period <= 0 {
			period = totp.DefaultPeriod
		}
		digits := opts.Digits
		if digits <= 0 {
			digits = totp.DefaultDigits
		}
		cb(Update{Code: strings.Repeat("-", digits), Remaining: 0, Period: period, Err: err})
		return
	}
	cb(Update{Code: code.Code, Remaining: code.Remaining, Period: code.Period})
}
