package session

import "github.com/abhisek/mathdrill/internal/problemgen"

// BaseStreakThreshold is the first streak milestone.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above the current streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}

// Auto-levelling thresholds.
const (
	LevelUpAfter   = 3 // consecutive correct answers in a slot
	LevelDownAfter = 2 // consecutive wrong answers in a slot
)

type levelRun struct {
	correct, wrong int
}

// record updates the run and returns the level change it triggers.
func (r *levelRun) record(correct bool, level int) int {
	if correct {
		r.correct++
		r.wrong = 0
		if r.correct >= LevelUpAfter && level < problemgen.MaxLevel {
			r.correct = 0
			return 1
		}
		return 0
	}
	r.wrong++
	r.correct = 0
	if r.wrong >= LevelDownAfter && level > problemgen.MinLevel {
		r.wrong = 0
		return -1
	}
	return 0
}
