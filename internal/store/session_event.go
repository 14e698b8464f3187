package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var sessionEventColumns = []string{
	"sequence", "timestamp", "session_id", "action",
	"questions_served", "correct_answers", "best_streak", "duration_secs", "plan_summary",
}

var answerEventColumns = []string{
	"sequence", "timestamp", "session_id", "kind", "level", "question_key",
	"question_text", "correct_answer", "learner_answer", "correct", "time_ms",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	plan := data.PlanSummary
	if plan == nil {
		plan = []PlanSlotSummary{}
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan summary: %w", err)
	}

	query, args := builder().Insert("session_events").
		Columns(sessionEventColumns...).
		Values(seqNum, r.clock().UnixMilli(), data.SessionID, data.Action,
			data.QuestionsServed, data.CorrectAnswers, data.BestStreak, data.DurationSecs, string(planJSON)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert("answer_events").
		Columns(answerEventColumns...).
		Values(seqNum, r.clock().UnixMilli(), data.SessionID, data.Kind, data.Level, data.QuestionKey,
			data.QuestionText, data.CorrectAnswer, data.LearnerAnswer, data.Correct, data.TimeMs).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := builder().Select(sessionEventColumns...).From(entsql.Table("session_events"))
	query, args := applyQueryOpts(sel, opts, false).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var (
			e        SessionEvent
			ts       int64
			planJSON string
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Action,
			&e.QuestionsServed, &e.CorrectAnswers, &e.BestStreak, &e.DurationSecs, &planJSON); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		if err := json.Unmarshal([]byte(planJSON), &e.PlanSummary); err != nil {
			return nil, fmt.Errorf("unmarshal plan summary: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	sel := builder().Select(answerEventColumns...).From(entsql.Table("answer_events"))
	query, args := applyQueryOpts(sel, opts, true).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			e  AnswerEvent
			ts int64
		)
		if err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Kind, &e.Level, &e.QuestionKey,
			&e.QuestionText, &e.CorrectAnswer, &e.LearnerAnswer, &e.Correct, &e.TimeMs); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) AccuracyByKind(ctx context.Context) ([]KindAccuracy, error) {
	query, args := builder().
		Select("kind", entsql.As(entsql.Count("*"), "attempts"), entsql.As(entsql.Sum("correct"), "correct_count")).
		From(entsql.Table("answer_events")).
		GroupBy("kind").
		OrderBy("kind").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query accuracy by kind: %w", err)
	}
	defer rows.Close()

	var out []KindAccuracy
	for rows.Next() {
		var (
			k       KindAccuracy
			correct sql.NullInt64
		)
		if err := rows.Scan(&k.Kind, &k.Attempts, &correct); err != nil {
			return nil, fmt.Errorf("scan accuracy: %w", err)
		}
		k.Correct = int(correct.Int64)
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *eventRepo) KindAccuracy(ctx context.Context, kind string) (float64, error) {
	query, args := builder().
		Select(entsql.Count("*"), entsql.Sum("correct")).
		From(entsql.Table("answer_events")).
		Where(entsql.EQ("kind", kind)).
		Query()

	var (
		attempts int
		correct  sql.NullInt64
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&attempts, &correct); err != nil {
		return 0, fmt.Errorf("query kind accuracy: %w", err)
	}
	return KindAccuracy{Kind: kind, Attempts: attempts, Correct: int(correct.Int64)}.Accuracy(), nil
}
