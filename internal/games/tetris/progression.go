package tetris

import "time"

// Progression maps cleared rows to score, level and fall speed.
// It is a pure policy; the engine feeds it the outcome of every lock.
type Progression struct {
	PointsPerLine int           // Multiplied by rows cleared and current level
	LinesPerLevel int           // Total rows needed per level step
	BaseInterval  time.Duration // Fall interval at level 1
	IntervalStep  time.Duration // Reduction per level above 1
	MinInterval   time.Duration // Floor for the fall interval
}

// DefaultProgression returns the classic policy: 100 points per row times
// level, a level every 10 rows, 1s falls shrinking by 100ms per level down
// to 100ms.
func DefaultProgression() Progression {
	return Progression{
		PointsPerLine: 100,
		LinesPerLevel: 10,
		BaseInterval:  time.Second,
		IntervalStep:  100 * time.Millisecond,
		MinInterval:   100 * time.Millisecond,
	}
}

// Outcome is the progression state after one lock.
type Outcome struct {
	ScoreDelta   int
	TotalLines   int
	Level        int
	FallInterval time.Duration
}

// Advance applies cleared rows at the given level and running line total.
// Clearing nothing leaves level and interval as they were.
func (p Progression) Advance(cleared, level, totalLines int) Outcome {
	if cleared <= 0 {
		return Outcome{
			TotalLines:   totalLines,
			Level:        level,
			FallInterval: p.FallInterval(level),
		}
	}

	total := totalLines + cleared
	newLevel := p.LevelFor(total)
	return Outcome{
		ScoreDelta:   cleared * p.PointsPerLine * level,
		TotalLines:   total,
		Level:        newLevel,
		FallInterval: p.FallInterval(newLevel),
	}
}

// LevelFor returns the level reached after totalLines rows.
func (p Progression) LevelFor(totalLines int) int {
	per := p.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return totalLines/per + 1
}

// FallInterval returns the time between automatic drops at level.
// It never increases with level and never drops below MinInterval.
func (p Progression) FallInterval(level int) time.Duration {
	interval := p.BaseInterval - time.Duration(max(level-1, 0))*p.IntervalStep
	return max(interval, p.MinInterval)
}
