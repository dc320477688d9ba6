package bridge

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tessro/tidal-presence/internal/core"
	"github.com/tessro/tidal-presence/internal/metrics"
)

const (
	DefaultPollInterval      = 15 * time.Second
	DefaultReconnectInterval = 30 * time.Second

	// shutdownTimeout bounds the final clear at shutdown.
	shutdownTimeout = 5 * time.Second
)

// Options configures a Bridge. Zero values use the defaults.
type Options struct {
	PollInterval      time.Duration
	ReconnectInterval time.Duration
	Clock             clockwork.Clock
}

// Bridge mirrors the track reported by a StatusSource onto a Presence.
// All state is owned by the goroutine calling Run (or Tick).
type Bridge struct {
	source   core.StatusSource
	presence core.Presence
	policy   *ReconnectPolicy
	clock    clockwork.Clock
	interval time.Duration

	// presented is the last snapshot pushed (or attempted), nil when
	// nothing is shown.
	presented *core.Snapshot
}

// New creates a Bridge.
func New(source core.StatusSource, presence core.Presence, opts Options) *Bridge {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.ReconnectInterval <= 0 {
		opts.ReconnectInterval = DefaultReconnectInterval
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Bridge{
		source:   source,
		presence: presence,
		policy:   NewReconnectPolicy(opts.ReconnectInterval),
		clock:    opts.Clock,
		interval: opts.PollInterval,
	}
}

// Presented returns the snapshot currently used as the comparison
// baseline, or nil.
func (b *Bridge) Presented() *core.Snapshot {
	return b.presented
}

// Run ticks until ctx is cancelled, then clears and closes the presence.
// It only returns after cleanup and never fails because of a single tick.
func (b *Bridge) Run(ctx context.Context) error {
	slog.Info("Starting Tidal Hi-Fi Discord Rich Presence",
		"interval", b.interval)

	for ctx.Err() == nil {
		b.safeTick(ctx)

		select {
		case <-ctx.Done():
		case <-b.clock.After(b.interval):
		}
	}

	b.shutdown()
	return nil
}

// Tick performs one cycle: reconnect if due, fetch, then push or clear.
func (b *Bridge) Tick(ctx context.Context) {
	b.maybeConnect(ctx)

	snap, err := b.source.Current(ctx)
	if ctx.Err() != nil {
		// Cancelled mid-fetch; shutdown handles the clear.
		return
	}
	switch {
	case err != nil:
		slog.Warn("Failed to get track info from Tidal Hi-Fi", "error", err)
		metrics.FetchTotal.WithLabelValues(metrics.ResultError).Inc()
		snap = nil
	case snap == nil:
		metrics.FetchTotal.WithLabelValues(metrics.ResultEmpty).Inc()
	default:
		metrics.FetchTotal.WithLabelValues(metrics.ResultTrack).Inc()
	}

	if snap != nil {
		if !Changed(b.presented, snap) {
			return
		}
		if b.presence.Connected() {
			err := b.presence.Push(ctx, snap)
			metrics.Updates.WithLabelValues(metrics.Result(err)).Inc()
			if err != nil {
				metrics.SetConnected(false)
			}
		}
		// The baseline advances even when the push failed; the retry
		// happens after the next reconnect.
		b.presented = snap
		return
	}

	if b.presented != nil && b.presence.Connected() {
		err := b.presence.Clear(ctx)
		metrics.Clears.WithLabelValues(metrics.Result(err)).Inc()
		b.presented = nil
	}
}

// maybeConnect attempts a connection when disconnected and the cooldown
// has passed.
func (b *Bridge) maybeConnect(ctx context.Context) {
	if !b.policy.Allow(b.presence.Connected(), b.clock.Now()) {
		return
	}

	err := b.presence.Connect(ctx)
	metrics.ConnectAttempts.WithLabelValues(metrics.Result(err)).Inc()
	metrics.SetConnected(err == nil)
	if err != nil {
		return
	}

	// A new session shows nothing, so whatever was presented must be resent.
	b.presented = nil
}

// safeTick runs Tick, recovering from any panic so the loop continues.
func (b *Bridge) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			metrics.TickPanics.Inc()
			slog.Error("Unexpected error",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	b.Tick(ctx)
}

// shutdown clears the presence if connected, then always closes it.
func (b *Bridge) shutdown() {
	slog.Info("Shutting down...")

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Unexpected error during shutdown", "panic", r)
		}
		metrics.SetConnected(false)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if b.presence.Connected() {
		_ = b.presence.Clear(ctx)
	}
	if err := b.presence.Close(); err != nil {
		slog.Warn("Failed to close Discord connection", "error", err)
	}
}
