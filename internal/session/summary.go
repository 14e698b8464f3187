package session

import "time"

// SessionSummary holds the data displayed after a session.
type SessionSummary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	BestStreak     int
	KindResults    []KindResult
}

// BuildSummary creates a SessionSummary from the current session state.
// Kinds appear in plan order, each once.
func BuildSummary(state *SessionState) *SessionSummary {
	var results []KindResult
	seen := make(map[string]bool)
	for _, slot := range state.Plan.Slots {
		kr, ok := state.PerKindResults[slot.Kind]
		if !ok || seen[string(slot.Kind)] {
			continue
		}
		seen[string(slot.Kind)] = true
		results = append(results, *kr)
	}

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &SessionSummary{
		SessionID:      state.ID,
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		BestStreak:     state.BestStreak,
		KindResults:    results,
	}
}
