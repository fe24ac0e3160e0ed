package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressionTenSingles(t *testing.T) {
	p := DefaultProgression()
	level, lines, score := 1, 0, 0

	for i := 0; i < 10; i++ {
		out := p.Advance(1, level, lines)
		score += out.ScoreDelta
		level, lines = out.Level, out.TotalLines
	}

	assert.Equal(t, 2, level)
	assert.Equal(t, 10, lines)
	assert.Equal(t, 1000, score)
	assert.Equal(t, 900*time.Millisecond, p.FallInterval(level))
}

func TestProgressionScore(t *testing.T) {
	p := DefaultProgression()

	tests := []struct {
		name         string
		cleared      int
		level        int
		lines        int
		wantDelta    int
		wantLevel    int
		wantInterval time.Duration
	}{
		{"four at level 1", 4, 1, 0, 400, 1, time.Second},
		{"nothing cleared", 0, 3, 25, 0, 3, 800 * time.Millisecond},
		{"double at level 3", 2, 3, 28, 600, 4, 700 * time.Millisecond},
		{"crosses two levels", 4, 1, 18, 400, 3, 800 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := p.Advance(tc.cleared, tc.level, tc.lines)
			assert.Equal(t, tc.wantDelta, out.ScoreDelta)
			assert.Equal(t, tc.lines+max(tc.cleared, 0), out.TotalLines)
			assert.Equal(t, tc.wantLevel, out.Level)
			assert.Equal(t, tc.wantInterval, out.FallInterval)
		})
	}
}

func TestFallIntervalFloor(t *testing.T) {
	p := DefaultProgression()

	prev := p.FallInterval(1)
	for level := 2; level <= 30; level++ {
		cur := p.FallInterval(level)
		assert.LessOrEqual(t, cur, prev, "interval must not grow at level %d", level)
		assert.GreaterOrEqual(t, cur, p.MinInterval)
		prev = cur
	}
	assert.Equal(t, 100*time.Millisecond, p.FallInterval(10))
	assert.Equal(t, 100*time.Millisecond, p.FallInterval(25))
}

func TestFallIntervalFixedSpeed(t *testing.T) {
	p := DefaultProgression()
	p.IntervalStep = 0
	assert.Equal(t, time.Second, p.FallInterval(7))
}
