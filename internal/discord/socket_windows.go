//go:build windows

package discord

import (
	"context"
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"
	perrors "github.com/tessro/tidal-presence/internal/errors"
)

// Dial connects to the first discord-ipc-N named pipe that accepts a
// connection.
func Dial(ctx context.Context) (net.Conn, error) {
	var lastErr error
	for _, path := range pipePaths() {
		conn, err := winio.DialPipeContext(ctx, path)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %w", perrors.ErrDiscordUnavailable, lastErr)
}

func pipePaths() []string {
	paths := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		paths = append(paths, fmt.Sprintf(`\\.\pipe\discord-ipc-%d`, i))
	}
	return paths
}
