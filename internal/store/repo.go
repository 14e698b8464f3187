package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // exact session match ("" = any)
	Kind      string    // exact kind match ("" = any); answer events only
}

// SnapshotData captures the learner state carried between sessions.
type SnapshotData struct {
	Version    int            `json:"version"`
	Levels     map[string]int `json:"levels,omitempty"` // last level per kind
	BestStreak int            `json:"bestStreak"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// PlanSlotSummary is one plan slot as stored with a session event.
type PlanSlotSummary struct {
	Kind  string `json:"kind"`
	Level int    `json:"level"`
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID       string
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	BestStreak      int
	DurationSecs    int
	PlanSummary     []PlanSlotSummary
}

// SessionEvent is a stored session event.
type SessionEvent struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID     string
	Kind          string
	Level         int
	QuestionKey   string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	TimeMs        int
}

// AnswerEvent is a stored answer event.
type AnswerEvent struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// KindAccuracy aggregates answer events for one exercise kind.
type KindAccuracy struct {
	Kind     string
	Attempts int
	Correct  int
}

// Accuracy returns Correct/Attempts, or 0 with no attempts.
func (k KindAccuracy) Accuracy() float64 {
	if k.Attempts == 0 {
		return 0
	}
	return float64(k.Correct) / float64(k.Attempts)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionEvents returns session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// QueryAnswerEvents returns answer events, newest first.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)

	// AccuracyByKind aggregates all answer events per kind, ordered by kind.
	AccuracyByKind(ctx context.Context) ([]KindAccuracy, error)

	// KindAccuracy returns the historical accuracy for one kind, 0 if unseen.
	KindAccuracy(ctx context.Context, kind string) (float64, error)

	// LastSequence returns the sequence of the newest event, 0 if none.
	LastSequence(ctx context.Context) (int64, error)
}
