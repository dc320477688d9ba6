package bridge

import (
	"github.com/mitchellh/hashstructure/v2"
	"github.com/tessro/tidal-presence/internal/core"
)

// Fingerprint hashes the fields of s that decide what is displayed:
// title, artists, status and source. Playback position, duration and
// album are ignored, so a track that is merely progressing keeps the
// same fingerprint.
func Fingerprint(s *core.Snapshot) (uint64, error) {
	return hashstructure.Hash(s, hashstructure.FormatV2, nil)
}

// Changed reports whether current should replace previous on the
// presence service. It is always true when nothing was presented before.
func Changed(previous, current *core.Snapshot) bool {
	if previous == nil || current == nil {
		return previous != current
	}

	prev, err := Fingerprint(previous)
	if err != nil {
		return true
	}
	curr, err := Fingerprint(current)
	if err != nil {
		return true
	}
	return prev != curr
}
