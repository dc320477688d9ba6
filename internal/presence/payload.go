package presence

import (
	"time"

	"github.com/tessro/tidal-presence/internal/core"
	"github.com/tessro/tidal-presence/internal/discord"
)

// Asset keys and labels registered on the Discord application.
const (
	LargeImage = "tidal_logo"
	LargeText  = "Tidal Hi-Fi"

	PlayImage  = "play"
	PauseImage = "pause"
	PlayText   = "Playing"
	PauseText  = "Paused"
)

// BuildActivity maps a snapshot to the presence payload. Progress
// timestamps are anchored at now, so repeated pushes of the same track
// compute a fresh start and end each time.
func BuildActivity(s *core.Snapshot, now time.Time) *discord.Activity {
	state := "by " + s.Artists
	if s.Album != "" {
		state += " • " + s.Album
	}

	largeText := LargeText
	if s.Source != "" {
		largeText += " • " + s.Source
	}

	assets := &discord.Assets{
		LargeImage: LargeImage,
		LargeText:  largeText,
		SmallImage: PauseImage,
		SmallText:  PauseText,
	}
	if s.IsPlaying() {
		assets.SmallImage = PlayImage
		assets.SmallText = PlayText
	}

	activity := &discord.Activity{
		Details: s.Title,
		State:   state,
		Assets:  assets,
	}

	if s.HasProgress() {
		start := now.Unix() - s.Elapsed
		activity.Timestamps = &discord.Timestamps{
			Start: start,
			End:   start + s.Duration,
		}
	}

	return activity
}
