package bridge

import (
	"time"

	"golang.org/x/time/rate"
)

// ReconnectPolicy limits connection attempts to one per cooldown while
// disconnected.
type ReconnectPolicy struct {
	limiter *rate.Limiter
}

// NewReconnectPolicy creates a policy that allows an attempt immediately
// and then at most one per cooldown.
func NewReconnectPolicy(cooldown time.Duration) *ReconnectPolicy {
	return &ReconnectPolicy{
		limiter: rate.NewLimiter(rate.Every(cooldown), 1),
	}
}

// Allow reports whether to attempt a connection at now. It never allows
// an attempt while connected. A true result counts as the attempt.
func (p *ReconnectPolicy) Allow(connected bool, now time.Time) bool {
	if connected {
		return false
	}
	return p.limiter.AllowN(now, 1)
}
