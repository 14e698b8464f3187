package session

import (
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// PlanSlot is a single slot in the session plan: a kind and the level
// its questions are generated at. Level may change mid-session when
// auto-levelling is on.
type PlanSlot struct {
	Kind  problemgen.Kind
	Level int
}

// Plan is the ordered list of kind slots for a session.
type Plan struct {
	Slots []PlanSlot
}

// QuestionsPerSlot is the number of questions served per mini-block.
const QuestionsPerSlot = 3

// DefaultQuestions is the default session length in questions.
const DefaultQuestions = 15

// Summary converts the plan for storage with a session event.
func (p *Plan) Summary() []store.PlanSlotSummary {
	out := make([]store.PlanSlotSummary, len(p.Slots))
	for i, s := range p.Slots {
		out[i] = store.PlanSlotSummary{Kind: string(s.Kind), Level: s.Level}
	}
	return out
}

// Levels returns the current level of each kind in the plan.
func (p *Plan) Levels() map[string]int {
	out := make(map[string]int, len(p.Slots))
	for _, s := range p.Slots {
		out[string(s.Kind)] = s.Level
	}
	return out
}

// ApplyLevels overrides slot levels with saved ones. Unknown kinds and
// out-of-range levels are ignored.
func (p *Plan) ApplyLevels(levels map[string]int) {
	for i, s := range p.Slots {
		if lvl, ok := levels[string(s.Kind)]; ok && problemgen.ValidLevel(lvl) {
			p.Slots[i].Level = lvl
		}
	}
}
