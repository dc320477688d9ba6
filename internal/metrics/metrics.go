package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultTrack = "track"
	ResultEmpty = "empty"
)

var (
	// FetchTotal counts status queries against Tidal Hi-Fi by outcome
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tidal_presence_fetch_total",
			Help: "Status queries by result (track, empty, error)",
		},
		[]string{"result"},
	)

	// ConnectAttempts counts Discord connection attempts
	ConnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tidal_presence_connect_attempts_total",
			Help: "Discord connection attempts by result",
		},
		[]string{"result"},
	)

	// Updates counts presence pushes
	Updates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tidal_presence_updates_total",
			Help: "Presence updates by result",
		},
		[]string{"result"},
	)

	// Clears counts presence clears
	Clears = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tidal_presence_clears_total",
			Help: "Presence clears by result",
		},
		[]string{"result"},
	)

	// Connected is 1 while a Discord session is established
	Connected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tidal_presence_connected",
			Help: "Whether the Discord session is connected (0 or 1)",
		},
	)

	// TickPanics counts ticks aborted by an unexpected panic
	TickPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tidal_presence_tick_panics_total",
			Help: "Ticks that panicked and were recovered",
		},
	)
)

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

// SetConnected updates the connection gauge.
func SetConnected(connected bool) {
	if connected {
		Connected.Set(1)
		return
	}
	Connected.Set(0)
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
