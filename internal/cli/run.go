package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/tessro/tidal-presence/internal/bridge"
	"github.com/tessro/tidal-presence/internal/logging"
	"github.com/tessro/tidal-presence/internal/metrics"
	"github.com/tessro/tidal-presence/internal/presence"
	"github.com/tessro/tidal-presence/internal/tidal"
)

func runBridge(cmd *cobra.Command, args []string) error {
	closeLog, err := logging.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := tidal.New(cfg.Tidal.URL, cfg.Tidal.TimeoutDuration())
	if Verbose() {
		source.SetVerbose(true, func(format string, args ...interface{}) {
			slog.Debug(fmt.Sprintf(format, args...))
		})
	}

	clock := clockwork.NewRealClock()
	channel := presence.NewChannel(presence.DiscordDialer(cfg.Discord.ClientID), clock)

	if cfg.Metrics.Listen != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Listen); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	b := bridge.New(source, channel, bridge.Options{
		PollInterval:      cfg.Bridge.PollDuration(),
		ReconnectInterval: cfg.Bridge.ReconnectDuration(),
		Clock:             clock,
	})

	slog.Debug("Configuration loaded",
		"tidal_url", cfg.Tidal.URL,
		"client_id", cfg.Discord.ClientID,
		"poll_interval", cfg.Bridge.PollDuration(),
		"reconnect_interval", cfg.Bridge.ReconnectDuration())

	return b.Run(ctx)
}
