package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

var (
	// ErrNoExercise is returned when an answer arrives with nothing served.
	ErrNoExercise = errors.New("no exercise in progress")

	// ErrEmptyAnswer is returned for blank input. The exercise stays
	// current so the learner can try again.
	ErrEmptyAnswer = errors.New("empty answer")
)

// Next serves the next exercise. It rotates to the next slot after
// QuestionsPerSlot questions, generates against the session's UsedKeys,
// records the new key and makes the exercise current.
func Next(state *SessionState, gen Generator, now time.Time) (*problemgen.Exercise, error) {
	if len(state.Plan.Slots) == 0 {
		return nil, ErrEmptyPlan
	}
	if ShouldAdvanceSlot(state) {
		AdvanceSlot(state)
	}
	slot := CurrentSlot(state)

	ex, err := gen.Generate(slot.Kind, slot.Level, state.UsedKeys)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", slot.Kind, err)
	}
	state.UsedKeys.Record(ex)
	state.Current = ex
	state.QuestionStartTime = now
	state.QuestionsInSlot++
	return ex, nil
}

// HandleAnswer grades raw against the current exercise and updates score,
// streak, per-kind results and history. A blank answer returns
// ErrEmptyAnswer and changes nothing. When a Recorder is set the answer is
// persisted; a recording failure is returned alongside the result.
func HandleAnswer(state *SessionState, raw string, now time.Time) (*CompletedExercise, error) {
	ex := state.Current
	if ex == nil {
		return nil, ErrNoExercise
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyAnswer
	}

	correct := problemgen.CheckAnswer(raw, ex)
	done := CompletedExercise{
		Exercise: ex,
		Answer:   strings.TrimSpace(raw),
		Correct:  correct,
		Duration: now.Sub(state.QuestionStartTime),
	}

	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}
	if kr := state.PerKindResults[ex.Kind]; kr != nil {
		kr.Record(correct)
	}

	// Update streak tracking.
	if correct {
		state.Streak++
		state.BestStreak = max(state.BestStreak, state.Streak)
		if state.Streak >= state.NextStreakThreshold {
			done.Milestone = state.Streak
			state.NextStreakThreshold = NextStreakThreshold(state.Streak)
		}
	} else {
		state.Streak = 0
		state.NextStreakThreshold = BaseStreakThreshold
	}

	if state.AutoLevel {
		done.LevelChange, done.NewLevel = adjustLevel(state, correct)
	}

	state.History = append(state.History, done)
	state.Current = nil
	state.Elapsed = now.Sub(state.StartTime)

	if state.Recorder != nil {
		err := state.Recorder.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:     state.ID,
			Kind:          string(ex.Kind),
			Level:         ex.Level,
			QuestionKey:   ex.Key,
			QuestionText:  ex.Text(),
			CorrectAnswer: ex.AnswerString(),
			LearnerAnswer: done.Answer,
			Correct:       correct,
			TimeMs:        int(done.Duration.Milliseconds()),
		})
		if err != nil {
			return &done, fmt.Errorf("record answer: %w", err)
		}
	}
	return &done, nil
}

// adjustLevel moves the current slot's level after a run of results. It
// returns the change and the resulting level, or zeros when nothing moved.
func adjustLevel(state *SessionState, correct bool) (change, level int) {
	slot := CurrentSlot(state)
	if slot == nil {
		return 0, 0
	}
	idx := state.CurrentSlotIndex
	level = problemgen.ClampLevel(slot.Level)
	change = state.runs[idx].record(correct, level)
	if change == 0 {
		return 0, 0
	}
	slot.Level = level + change
	if kr := state.PerKindResults[slot.Kind]; kr != nil {
		kr.LevelAfter = slot.Level
	}
	return change, slot.Level
}

// AdvanceSlot moves to the next slot in the plan, wrapping around.
// Returns false if the plan is empty.
func AdvanceSlot(state *SessionState) bool {
	state.QuestionsInSlot = 0
	numSlots := len(state.Plan.Slots)
	if numSlots == 0 {
		return false
	}
	state.CurrentSlotIndex = (state.CurrentSlotIndex + 1) % numSlots
	return true
}

// ShouldAdvanceSlot returns true if the current slot's mini-block is done.
func ShouldAdvanceSlot(state *SessionState) bool {
	return state.QuestionsInSlot >= QuestionsPerSlot
}

// CurrentSlot returns the current plan slot, or nil if invalid.
func CurrentSlot(state *SessionState) *PlanSlot {
	if state.CurrentSlotIndex < 0 || state.CurrentSlotIndex >= len(state.Plan.Slots) {
		return nil
	}
	return &state.Plan.Slots[state.CurrentSlotIndex]
}

// Start records the session start event.
func Start(ctx context.Context, state *SessionState) error {
	if state.Recorder == nil {
		return nil
	}
	err := state.Recorder.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:   state.ID,
		Action:      store.ActionStart,
		PlanSummary: state.Plan.Summary(),
	})
	if err != nil {
		return fmt.Errorf("record session start: %w", err)
	}
	return nil
}

// Finish records the session end event with the final totals.
func Finish(ctx context.Context, state *SessionState) error {
	if state.Recorder == nil {
		return nil
	}
	err := state.Recorder.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       state.ID,
		Action:          store.ActionEnd,
		QuestionsServed: state.TotalQuestions,
		CorrectAnswers:  state.TotalCorrect,
		BestStreak:      state.BestStreak,
		DurationSecs:    int(state.Elapsed.Seconds()),
		PlanSummary:     state.Plan.Summary(),
	})
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}
	return nil
}
