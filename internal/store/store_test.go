package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"session_events", "answer_events", "snapshots", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLastSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	last, err := repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last (empty): %v", err)
	}
	if last != 0 {
		t.Errorf("last = %d, want 0 before any event", last)
	}

	for i := 0; i < 3; i++ {
		if err := repo.AppendAnswerEvent(ctx, answer("s1", "placeValue", true)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	last, err = repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last != 3 {
		t.Errorf("last = %d, want 3", last)
	}
}

func answer(session, kind string, correct bool) AnswerEventData {
	return AnswerEventData{
		SessionID:     session,
		Kind:          kind,
		Level:         2,
		QuestionKey:   "3+4",
		QuestionText:  "3 + 4 = ?",
		CorrectAnswer: "7",
		LearnerAnswer: map[bool]string{true: "7", false: "8"}[correct],
		Correct:       correct,
		TimeMs:        1500,
	}
}

func TestAnswerEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswerEvent(ctx, answer("s1", "additionAdvanced", true)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, answer("s1", "additionAdvanced", false)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, answer("s2", "placeValue", true)); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.QueryAnswerEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("events not newest first: %d then %d", all[0].Sequence, all[1].Sequence)
	}
	if all[2].LearnerAnswer != "7" || !all[2].Correct || all[2].TimeMs != 1500 {
		t.Errorf("oldest event = %+v", all[2].AnswerEventData)
	}

	byKind, err := repo.QueryAnswerEvents(ctx, QueryOpts{Kind: "additionAdvanced"})
	if err != nil {
		t.Fatalf("query by kind: %v", err)
	}
	if len(byKind) != 2 {
		t.Errorf("by kind len = %d, want 2", len(byKind))
	}

	limited, err := repo.QueryAnswerEvents(ctx, QueryOpts{SessionID: "s1", Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Correct {
		t.Errorf("limited = %+v, want the newest s1 answer (wrong)", limited)
	}

	after, err := repo.QueryAnswerEvents(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].Kind != "placeValue" {
		t.Errorf("after = %+v", after)
	}
}

func TestAccuracyByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, ok := range []bool{true, true, false, true} {
		if err := repo.AppendAnswerEvent(ctx, answer("s", "fractionAddition", ok)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendAnswerEvent(ctx, answer("s", "compareNumbers", false)); err != nil {
		t.Fatalf("append: %v", err)
	}

	stats, err := repo.AccuracyByKind(ctx)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len = %d, want 2", len(stats))
	}
	// Ordered by kind name.
	if stats[0].Kind != "compareNumbers" || stats[0].Attempts != 1 || stats[0].Correct != 0 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Kind != "fractionAddition" || stats[1].Attempts != 4 || stats[1].Correct != 3 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
	if got := stats[1].Accuracy(); got != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}

	acc, err := repo.KindAccuracy(ctx, "fractionAddition")
	if err != nil {
		t.Fatalf("kind accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("KindAccuracy = %v, want 0.75", acc)
	}
	acc, err = repo.KindAccuracy(ctx, "placeValue")
	if err != nil {
		t.Fatalf("kind accuracy unseen: %v", err)
	}
	if acc != 0 {
		t.Errorf("KindAccuracy(unseen) = %v, want 0", acc)
	}
}

func TestSessionEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := SessionEventData{
		SessionID:   "abc",
		Action:      ActionStart,
		PlanSummary: []PlanSlotSummary{{Kind: "numberLine", Level: 1}, {Kind: "placeValue", Level: 3}},
	}
	end := SessionEventData{
		SessionID:       "abc",
		Action:          ActionEnd,
		QuestionsServed: 10,
		CorrectAnswers:  8,
		BestStreak:      5,
		DurationSecs:    240,
	}
	for _, e := range []SessionEventData{start, end} {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.Action, err)
		}
	}

	events, err := repo.QuerySessionEvents(ctx, QueryOpts{SessionID: "abc"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Action != ActionEnd || events[0].CorrectAnswers != 8 || events[0].BestStreak != 5 {
		t.Errorf("end event = %+v", events[0].SessionEventData)
	}
	if len(events[1].PlanSummary) != 2 || events[1].PlanSummary[1].Level != 3 {
		t.Errorf("plan summary = %+v", events[1].PlanSummary)
	}
	if events[0].PlanSummary == nil || len(events[0].PlanSummary) != 0 {
		t.Errorf("end plan summary = %#v, want empty", events[0].PlanSummary)
	}
}

func TestQueryTimeRange(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := base
	repo := &eventRepo{db: s.db, seq: s.seq, now: func() time.Time { return now }}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		now = base.Add(time.Duration(i) * time.Hour)
		if err := repo.AppendAnswerEvent(ctx, answer("s", "numberLine", true)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryAnswerEvents(ctx, QueryOpts{From: base.Add(30 * time.Minute), To: base.Add(90 * time.Minute)})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(base.Add(time.Hour)) {
		t.Errorf("timestamp = %v, want %v", got[0].Timestamp, base.Add(time.Hour))
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Levels: map[string]int{"placeValue": 4}, BestStreak: 7},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Levels["placeValue"] != 4 || snap.Data.BestStreak != 7 {
		t.Errorf("data = %+v", snap.Data)
	}
	if !snap.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", snap.Timestamp, now)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}

	// Fewer than keep is a no-op.
	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("prune no-op: %v", err)
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "nested", "drill.db")
	t.Setenv("MATHDRILL_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHDRILL_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "mathdrill", "mathdrill.db"); got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}
