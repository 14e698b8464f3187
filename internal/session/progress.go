package session

import "github.com/abhisek/mathdrill/internal/problemgen"

// KindResult tracks per-kind performance within a single session.
type KindResult struct {
	Kind        problemgen.Kind
	Name        string
	Attempted   int
	Correct     int
	LevelBefore int
	LevelAfter  int
}

func newKindResult(slot PlanSlot) *KindResult {
	name := string(slot.Kind)
	if info, err := problemgen.Info(slot.Kind); err == nil {
		name = info.Name
	}
	return &KindResult{
		Kind:        slot.Kind,
		Name:        name,
		LevelBefore: slot.Level,
		LevelAfter:  slot.Level,
	}
}

// Record adds a new answer result.
func (kr *KindResult) Record(correct bool) {
	kr.Attempted++
	if correct {
		kr.Correct++
	}
}

// Accuracy returns Correct/Attempted, or 0 before any attempt.
func (kr *KindResult) Accuracy() float64 {
	if kr.Attempted == 0 {
		return 0
	}
	return float64(kr.Correct) / float64(kr.Attempted)
}
