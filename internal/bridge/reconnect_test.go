package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReconnectPolicy(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	p := NewReconnectPolicy(30 * time.Second)

	assert.True(t, p.Allow(false, start), "first attempt is immediate")
	assert.False(t, p.Allow(false, start.Add(15*time.Second)))
	assert.False(t, p.Allow(false, start.Add(29*time.Second)))
	assert.True(t, p.Allow(false, start.Add(45*time.Second)))
	assert.False(t, p.Allow(false, start.Add(50*time.Second)))
}

func TestReconnectPolicyNeverWhileConnected(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	p := NewReconnectPolicy(30 * time.Second)
	assert.True(t, p.Allow(false, start))

	for i := 0; i < 5; i++ {
		assert.False(t, p.Allow(true, start.Add(time.Duration(i)*time.Minute)))
	}

	// Time spent connected counts towards the cooldown
	assert.True(t, p.Allow(false, start.Add(10*time.Minute)))
}

func TestReconnectPolicyThrottlesWithinWindow(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	p := NewReconnectPolicy(30 * time.Second)

	attempts := 0
	for i := 0; i < 10; i++ {
		if p.Allow(false, start.Add(time.Duration(i)*2*time.Second)) {
			attempts++
		}
	}
	assert.Equal(t, 1, attempts)
}
