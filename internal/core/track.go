package core

import "fmt"

// Status indicates the playback state reported by the player.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a raw status string to a Status. Anything other than
// playing or paused is StatusUnknown.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPlaying:
		return StatusPlaying
	case StatusPaused:
		return StatusPaused
	default:
		return StatusUnknown
	}
}

// Snapshot is one observation of what the player is currently playing.
// Snapshots are produced fresh on every fetch and never modified.
//
// Fields tagged hash:"ignore" do not take part in change detection.
type Snapshot struct {
	Title    string `json:"title"`
	Artists  string `json:"artists"`
	Album    string `json:"album,omitempty" hash:"ignore"`
	Status   Status `json:"status"`
	Elapsed  int64  `json:"elapsed_seconds" hash:"ignore"`
	Duration int64  `json:"duration_seconds" hash:"ignore"`
	Source   string `json:"source,omitempty"`
}

// IsPlaying returns true if the player reports active playback.
func (s *Snapshot) IsPlaying() bool {
	return s != nil && s.Status == StatusPlaying
}

// HasProgress returns true if a progress bar can be shown for the track.
func (s *Snapshot) HasProgress() bool {
	return s.IsPlaying() && s.Duration > 0
}

// FormatDuration formats a duration in seconds as mm:ss or hh:mm:ss.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// Progress returns "[m:ss/m:ss]" when both elapsed and duration are known,
// or an empty string otherwise.
func (s *Snapshot) Progress() string {
	if s == nil || s.Elapsed <= 0 || s.Duration <= 0 {
		return ""
	}
	return fmt.Sprintf("[%s/%s]", FormatDuration(s.Elapsed), FormatDuration(s.Duration))
}
