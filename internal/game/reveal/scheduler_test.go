package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDue(t *testing.T) {
	tests := []struct {
		name       string
		elapsed    time.Duration
		lastReveal time.Duration
		interval   time.Duration
		expected   bool
	}{
		{"before interval", 100 * time.Millisecond, 50 * time.Millisecond, 60 * time.Millisecond, false},
		{"exactly interval", 110 * time.Millisecond, 50 * time.Millisecond, 60 * time.Millisecond, true},
		{"past interval", time.Second, 0, 60 * time.Millisecond, true},
		{"zero interval", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Due(tt.elapsed, tt.lastReveal, tt.interval))
		})
	}
}

func TestAdvance(t *testing.T) {
	t.Run("not due keeps state", func(t *testing.T) {
		step, at := Advance(30*time.Millisecond, 0, DefaultInterval, 1, 5)
		assert.Equal(t, 1, step)
		assert.Equal(t, time.Duration(0), at)
	})

	t.Run("due reveals one cell", func(t *testing.T) {
		step, at := Advance(70*time.Millisecond, 0, DefaultInterval, 1, 5)
		assert.Equal(t, 2, step)
		assert.Equal(t, 70*time.Millisecond, at)
	})

	t.Run("never exceeds the path", func(t *testing.T) {
		step, _ := Advance(time.Hour, 0, DefaultInterval, 5, 5)
		assert.Equal(t, 5, step)
		assert.True(t, Done(step, 5))
	})

	t.Run("empty path", func(t *testing.T) {
		step, _ := Advance(time.Hour, 0, DefaultInterval, 0, 0)
		assert.Zero(t, step)
	})
}

func TestAdvance_FullReveal(t *testing.T) {
	const pathLen = 4
	step, last := 0, time.Duration(0)

	// Simulate 60 fps frames
	frame := time.Second / 60
	frames := 0
	for elapsed := time.Duration(0); !Done(step, pathLen); elapsed += frame {
		prev := step
		step, last = Advance(elapsed, last, DefaultInterval, step, pathLen)
		assert.LessOrEqual(t, step-prev, 1, "at most one cell per frame")
		frames++
	}

	// First cell appears on the first due frame, then one every interval
	assert.InDelta(t, int(pathLen*DefaultInterval/frame), frames, 4)
}
