package tidal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tessro/tidal-presence/internal/core"
	perrors "github.com/tessro/tidal-presence/internal/errors"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != CurrentPath {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCurrent(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{
		"title": "Song A",
		"artists": "Artist X",
		"album": "Album Z",
		"status": "playing",
		"currentInSeconds": 10,
		"durationInSeconds": 200,
		"playingFrom": "My Mix"
	}`)

	c := New(srv.URL+"/", time.Second)
	snap, err := c.Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	want := core.Snapshot{
		Title:    "Song A",
		Artists:  "Artist X",
		Album:    "Album Z",
		Status:   core.StatusPlaying,
		Elapsed:  10,
		Duration: 200,
		Source:   "My Mix",
	}
	if snap == nil || *snap != want {
		t.Errorf("Current() = %+v, want %+v", snap, want)
	}
}

func TestCurrentNothingPlaying(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"status": "paused", "currentInSeconds": 0}`)

	snap, err := New(srv.URL, time.Second).Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if snap != nil {
		t.Errorf("Current() = %+v, want nil", snap)
	}
}

func TestCurrentErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "boom", perrors.ErrSourceUnavailable},
		{"not found", http.StatusNotFound, "", perrors.ErrSourceUnavailable},
		{"malformed json", http.StatusOK, `{"title": `, perrors.ErrInvalidResponse},
		{"html body", http.StatusOK, `<html></html>`, perrors.ErrInvalidResponse},
		{"wrong field type", http.StatusOK, `{"title": "x", "currentInSeconds": "ten"}`, perrors.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			snap, err := New(srv.URL, time.Second).Current(context.Background())
			if snap != nil {
				t.Errorf("Current() snapshot = %+v, want nil", snap)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Current() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCurrentUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	snap, err := New(url, time.Second).Current(context.Background())
	if snap != nil {
		t.Errorf("Current() snapshot = %+v, want nil", snap)
	}
	if err == nil {
		t.Fatal("Current() error = nil, want error")
	}
}

func TestCurrentTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	snap, err := New(srv.URL, 50*time.Millisecond).Current(context.Background())
	if snap != nil {
		t.Errorf("Current() snapshot = %+v, want nil", snap)
	}
	if !errors.Is(err, perrors.ErrTimeout) {
		t.Errorf("Current() error = %v, want ErrTimeout", err)
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 503, Body: "unavailable\n"}

	expected := "Tidal Hi-Fi API error 503: unavailable"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
	if !errors.Is(err, perrors.ErrSourceUnavailable) {
		t.Error("APIError should unwrap to ErrSourceUnavailable")
	}
}
