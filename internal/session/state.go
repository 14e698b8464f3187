package session

import (
	"context"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/google/uuid"
)

// Recorder persists session activity. store.EventRepo satisfies it.
type Recorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Generator produces exercises. *problemgen.Generator satisfies it.
type Generator interface {
	Generate(k problemgen.Kind, level int, used problemgen.KeySet) (*problemgen.Exercise, error)
}

// SessionState tracks the runtime state of an active session.
type SessionState struct {
	// ID is the UUID for this session.
	ID string

	// Plan is the session plan built at start.
	Plan *Plan

	// CurrentSlotIndex is the index into Plan.Slots for the current kind.
	CurrentSlotIndex int

	// QuestionsInSlot is the number of questions served in the current slot.
	QuestionsInSlot int

	// UsedKeys holds every question key served this session, shared
	// across all kinds.
	UsedKeys problemgen.KeySet

	// Current is the exercise awaiting an answer (nil between questions).
	Current *problemgen.Exercise

	// QuestionStartTime is when Current was served.
	QuestionStartTime time.Time

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// Streak is the current run of correct answers.
	Streak int

	// BestStreak is the longest run this session.
	BestStreak int

	// NextStreakThreshold is the streak length of the next milestone.
	NextStreakThreshold int

	// AutoLevel enables per-slot level adjustment.
	AutoLevel bool

	// PerKindResults tracks per-kind stats for the summary.
	PerKindResults map[problemgen.Kind]*KindResult

	// History lists answered exercises in order.
	History []CompletedExercise

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed is the time from StartTime to the latest answer.
	Elapsed time.Duration

	// Recorder receives answer events (nil disables persistence).
	Recorder Recorder

	// runs tracks consecutive results per slot for auto-levelling.
	runs []levelRun
}

// CompletedExercise is one answered exercise.
type CompletedExercise struct {
	Exercise *problemgen.Exercise
	Answer   string
	Correct  bool
	Duration time.Duration

	// Milestone is the streak length reached, or 0 if this answer did
	// not hit a milestone.
	Milestone int

	// LevelChange is +1 or -1 when auto-levelling moved the slot level.
	LevelChange int

	// NewLevel is the slot level after a LevelChange, 0 otherwise.
	NewLevel int
}

// NewSessionState creates a new session state with initialized maps.
func NewSessionState(plan *Plan, now time.Time) *SessionState {
	perKind := make(map[problemgen.Kind]*KindResult)
	for _, slot := range plan.Slots {
		if _, exists := perKind[slot.Kind]; !exists {
			perKind[slot.Kind] = newKindResult(slot)
		}
	}

	return &SessionState{
		ID:                  uuid.NewString(),
		Plan:                plan,
		UsedKeys:            problemgen.NewKeySet(),
		PerKindResults:      perKind,
		NextStreakThreshold: BaseStreakThreshold,
		StartTime:           now,
		runs:                make([]levelRun, len(plan.Slots)),
	}
}
