package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNotConnected       = errors.New("not connected to discord")
	ErrDiscordUnavailable = errors.New("discord is not running")
	ErrSourceUnavailable  = errors.New("tidal hi-fi is not reachable")
	ErrInvalidResponse    = errors.New("invalid response from tidal hi-fi")
	ErrTimeout            = errors.New("request timeout")
	ErrConfigNotFound     = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// PresenceError wraps an error with a user-friendly suggestion.
type PresenceError struct {
	Err        error
	Suggestion string
}

func (e *PresenceError) Error() string {
	return e.Err.Error()
}

func (e *PresenceError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &PresenceError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var presenceErr *PresenceError
	if errors.As(err, &presenceErr) && presenceErr.Suggestion != "" {
		return presenceErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Discord not running or socket missing
	if errors.Is(err, ErrDiscordUnavailable) || errors.Is(err, ErrNotConnected) ||
		strings.Contains(errStr, "discord-ipc") {
		return "Start the Discord desktop app and make sure it is logged in"
	}

	// Tidal Hi-Fi web server
	if errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrInvalidResponse) ||
		strings.Contains(errStr, "connection refused") {
		return "Start Tidal Hi-Fi and enable its API in Settings > Integrations"
	}

	if errors.Is(err, ErrTimeout) || strings.Contains(errStr, "timeout") {
		return "The request timed out. Check that Tidal Hi-Fi is responsive and try again"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'tidal-presence config show' to inspect the effective configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
