package tidal

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/tessro/tidal-presence/internal/core"
)

// Placeholders used when the player omits one of title or artists.
const (
	UnknownTitle  = "Unknown Track"
	UnknownArtist = "Unknown Artist"
)

// CurrentResponse is the body of GET /current. Every field is optional.
type CurrentResponse struct {
	Title             string  `json:"title"`
	Artists           Artists `json:"artists"`
	Album             string  `json:"album"`
	Status            string  `json:"status"`
	CurrentInSeconds  float64 `json:"currentInSeconds"`
	DurationInSeconds float64 `json:"durationInSeconds"`
	PlayingFrom       string  `json:"playingFrom"`
	URL               string  `json:"url"`
	Image             string  `json:"image"`
}

// Artists accepts either a preformatted string or a list of names.
type Artists string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Artists) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Artists(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	names := make([]string, 0, len(list))
	for _, n := range list {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	*a = Artists(strings.Join(names, ", "))
	return nil
}

// Snapshot converts the response to a core.Snapshot. It returns nil when
// both title and artists are missing, which means nothing is playing.
func (r *CurrentResponse) Snapshot() *core.Snapshot {
	if r == nil {
		return nil
	}

	title := strings.TrimSpace(r.Title)
	artists := strings.TrimSpace(string(r.Artists))
	if title == "" && artists == "" {
		return nil
	}
	// A record with only one of the two is still shown, with a
	// placeholder standing in for the missing field.
	if title == "" {
		title = UnknownTitle
	}
	if artists == "" {
		artists = UnknownArtist
	}

	return &core.Snapshot{
		Title:    title,
		Artists:  artists,
		Album:    strings.TrimSpace(r.Album),
		Status:   core.ParseStatus(r.Status),
		Elapsed:  seconds(r.CurrentInSeconds),
		Duration: seconds(r.DurationInSeconds),
		Source:   strings.TrimSpace(r.PlayingFrom),
	}
}

// seconds truncates a reported position to whole, non-negative seconds.
func seconds(v float64) int64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(v)
}
