package core

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"playing", StatusPlaying},
		{"paused", StatusPaused},
		{"stopped", StatusUnknown},
		{"", StatusUnknown},
		{"PLAYING", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseStatus(tt.in); got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{9, "0:09"},
		{75, "1:15"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSnapshotProgress(t *testing.T) {
	s := &Snapshot{Elapsed: 65, Duration: 200}
	if got := s.Progress(); got != "[1:05/3:20]" {
		t.Errorf("Progress() = %q, want %q", got, "[1:05/3:20]")
	}

	s = &Snapshot{Elapsed: 0, Duration: 200}
	if got := s.Progress(); got != "" {
		t.Errorf("Progress() = %q, want empty", got)
	}

	var nilSnap *Snapshot
	if got := nilSnap.Progress(); got != "" {
		t.Errorf("nil Progress() = %q, want empty", got)
	}
}

func TestSnapshotHasProgress(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
		want bool
	}{
		{"playing with duration", &Snapshot{Status: StatusPlaying, Duration: 100}, true},
		{"playing without duration", &Snapshot{Status: StatusPlaying}, false},
		{"paused with duration", &Snapshot{Status: StatusPaused, Duration: 100}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.HasProgress(); got != tt.want {
				t.Errorf("HasProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}
