package core

import "context"

// StatusSource reports what the media player is currently playing.
type StatusSource interface {
	// Current returns the current track, or nil if nothing is playing.
	// An error means the source could not be queried or its answer
	// could not be understood.
	Current(ctx context.Context) (*Snapshot, error)
}

// Presence publishes a track to a presence service.
type Presence interface {
	// Connected reports whether a session is currently established.
	Connected() bool

	// Connect (re)establishes the session, closing any previous one.
	Connect(ctx context.Context) error

	// Push displays the snapshot. A failed push drops the connection.
	Push(ctx context.Context, s *Snapshot) error

	// Clear removes any displayed presence.
	Clear(ctx context.Context) error

	// Close releases the session. Safe to call more than once.
	Close() error
}
