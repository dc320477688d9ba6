package presence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/tessro/tidal-presence/internal/core"
	"github.com/tessro/tidal-presence/internal/discord"
	perrors "github.com/tessro/tidal-presence/internal/errors"
)

// Session is one established connection to the presence service.
type Session interface {
	SetActivity(ctx context.Context, activity *discord.Activity) error
	ClearActivity(ctx context.Context) error
	Close() error
}

// Dialer establishes a new Session.
type Dialer func(ctx context.Context) (Session, error)

// DiscordDialer returns a Dialer that opens Discord IPC sessions for the
// given application ID.
func DiscordDialer(clientID string) Dialer {
	return func(ctx context.Context) (Session, error) {
		c := discord.NewClient(clientID)
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Channel publishes snapshots to the presence service and tracks whether
// a session is currently usable. It implements core.Presence.
type Channel struct {
	dial  Dialer
	clock clockwork.Clock

	mu        sync.Mutex
	session   Session
	connected bool
}

var _ core.Presence = (*Channel)(nil)

// NewChannel creates a disconnected channel.
func NewChannel(dial Dialer, clock clockwork.Clock) *Channel {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Channel{dial: dial, clock: clock}
}

// Connected reports whether the last connect succeeded and no push has
// failed since.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Connect closes any previous session and opens a new one.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeLocked()

	session, err := c.dial(ctx)
	if err != nil {
		slog.Warn("Failed to connect to Discord", "error", err)
		return fmt.Errorf("connect: %w", err)
	}

	c.session = session
	c.connected = true
	slog.Info("Connected to Discord Rich Presence")
	return nil
}

// Push sends the snapshot. Any failure marks the channel disconnected;
// the push is not retried.
func (c *Channel) Push(ctx context.Context, s *core.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.session == nil {
		return perrors.ErrNotConnected
	}

	activity := BuildActivity(s, c.clock.Now())
	slog.Debug("Sending presence", "activity", activity)

	if err := c.session.SetActivity(ctx, activity); err != nil {
		c.connected = false
		slog.Warn("Failed to update Discord presence", "error", err, "activity", activity)
		return fmt.Errorf("push: %w", err)
	}

	attrs := []any{"title", s.Title, "artists", s.Artists, "status", s.Status}
	if p := s.Progress(); p != "" {
		attrs = append(attrs, "progress", p)
	}
	slog.Info("Updated Discord presence", attrs...)
	return nil
}

// Clear removes the displayed presence. A failed clear is reported but
// leaves the connection state unchanged.
func (c *Channel) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.session == nil {
		return perrors.ErrNotConnected
	}

	if err := c.session.ClearActivity(ctx); err != nil {
		slog.Warn("Failed to clear Discord presence", "error", err)
		return fmt.Errorf("clear: %w", err)
	}

	slog.Info("Cleared Discord presence")
	return nil
}

// Close releases the session, if any. Safe to call repeatedly.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Channel) closeLocked() error {
	c.connected = false
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}
