//go:build !windows

package discord

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	perrors "github.com/tessro/tidal-presence/internal/errors"
)

// Dial connects to the first discord-ipc-N socket that accepts a connection.
func Dial(ctx context.Context) (net.Conn, error) {
	var d net.Dialer
	var lastErr error
	for _, path := range socketPaths() {
		conn, err := d.DialContext(ctx, "unix", path)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %w", perrors.ErrDiscordUnavailable, lastErr)
}

// socketPaths lists candidate socket locations, including the Flatpak and
// Snap sandboxes.
func socketPaths() []string {
	dir := runtimeDir()
	var paths []string
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("discord-ipc-%d", i)
		paths = append(paths,
			filepath.Join(dir, name),
			filepath.Join(dir, "app", "com.discordapp.Discord", name),
			filepath.Join(dir, "snap.discord", name),
		)
	}
	return paths
}

func runtimeDir() string {
	for _, env := range []string{"XDG_RUNTIME_DIR", "TMPDIR", "TMP", "TEMP"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return "/tmp"
}
