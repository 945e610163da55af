// file: models/challenge_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChallengeActiveAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stop := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	ch := &Challenge{CID: "c", TStart: start, TStop: stop}

	// Both window bounds are inclusive.
	assert.True(t, ch.ActiveAt(start))
	assert.True(t, ch.ActiveAt(stop))
	assert.True(t, ch.ActiveAt(start.Add(24*time.Hour)))

	assert.False(t, ch.ActiveAt(start.Add(-time.Second)))
	assert.False(t, ch.ActiveAt(stop.Add(time.Second)))
}
