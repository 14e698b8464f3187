package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/randsrc"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
	"github.com/spf13/cobra"
)

// snapshotsKept is how many learner snapshots survive a drill.
const snapshotsKept = 10

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Start an interactive practice session",
	Long: `Serve exercises one at a time and grade each answer.

Kinds rotate every three questions. Type q to stop early. Answers and the
session totals are saved to the history database unless --no-save is set.`,
	RunE: runDrill,
}

func init() {
	addDrillFlags(drillCmd)
}

func addDrillFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("kind", nil, "Exercise kinds to practice (repeatable or comma-separated)")
	cmd.Flags().String("strand", "", "Practice every kind in one strand")
	cmd.Flags().Int("level", 0, "Starting level 1-5")
	cmd.Flags().Int("questions", 0, "Number of questions")
	cmd.Flags().Bool("auto-level", false, "Adjust the level per kind from recent answers")
	cmd.Flags().Bool("weakest-first", false, "Order kinds by lowest historical accuracy")
	cmd.Flags().Bool("division", false, "Include ÷ in order-of-operations expressions")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 = random)")
	cmd.Flags().Bool("no-save", false, "Do not record the session")
}

// drillOptions is the configuration merged with command flags.
type drillOptions struct {
	kinds     []string
	strand    string
	level     int
	questions int
	autoLevel bool
	weakest   bool
	division  bool
	seed      uint64
	noSave    bool
}

func resolveDrillOptions(cmd *cobra.Command) drillOptions {
	f := cmd.Flags()
	opts := drillOptions{
		kinds:     cfg.Kinds,
		level:     cfg.Level,
		questions: cfg.Questions,
		autoLevel: cfg.AutoLevel,
		division:  cfg.Division,
		seed:      cfg.Seed,
	}
	if f.Changed("kind") {
		opts.kinds, _ = f.GetStringSlice("kind")
	}
	if f.Changed("level") {
		opts.level, _ = f.GetInt("level")
	}
	if f.Changed("questions") {
		opts.questions, _ = f.GetInt("questions")
	}
	if f.Changed("auto-level") {
		opts.autoLevel, _ = f.GetBool("auto-level")
	}
	if f.Changed("division") {
		opts.division, _ = f.GetBool("division")
	}
	if f.Changed("seed") {
		opts.seed, _ = f.GetUint64("seed")
	}
	opts.strand, _ = f.GetString("strand")
	opts.weakest, _ = f.GetBool("weakest-first")
	opts.noSave, _ = f.GetBool("no-save")
	return opts
}

func buildPlan(opts drillOptions) (*session.Plan, error) {
	switch {
	case opts.strand != "":
		return session.StrandPlan(problemgen.Strand(opts.strand), opts.level)
	case len(opts.kinds) > 0:
		return session.ParsePlan(opts.kinds, opts.level)
	default:
		return session.NewPlan(problemgen.AllKinds(), opts.level)
	}
}

func newGenerator(division bool, seed uint64) *problemgen.Generator {
	genCfg := problemgen.DefaultConfig()
	if division {
		genCfg = problemgen.DivisionConfig()
	}
	src := randsrc.Default()
	if seed != 0 {
		src = randsrc.New(seed)
	}
	return problemgen.New(src, genCfg)
}

func runDrill(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := resolveDrillOptions(cmd)
	if opts.questions < 1 {
		return fmt.Errorf("questions must be at least 1, got %d", opts.questions)
	}

	plan, err := buildPlan(opts)
	if err != nil {
		return err
	}

	var st *store.Store
	if !opts.noSave {
		st, err = openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		prepareFromHistory(ctx, st, plan, opts)
	}

	state := session.NewSessionState(plan, time.Now())
	state.AutoLevel = opts.autoLevel
	if st != nil {
		state.Recorder = st.EventRepo()
	}
	if err := session.Start(ctx, state); err != nil {
		slog.Warn("session start not recorded", "error", err)
	}

	gen := checkedGenerator{gen: newGenerator(opts.division, opts.seed)}
	out := cmd.OutOrStdout()
	if err := drillLoop(cmd.InOrStdin(), out, state, gen, opts.questions); err != nil {
		return err
	}
	state.Elapsed = time.Since(state.StartTime)

	if err := session.Finish(ctx, state); err != nil {
		slog.Warn("session end not recorded", "error", err)
	}
	if st != nil {
		saveSnapshot(ctx, st.SnapshotRepo(), st.EventRepo(), state, time.Now())
	}

	printSummary(out, session.BuildSummary(state))
	return nil
}

// prepareFromHistory applies saved levels and the weakest-first order.
// History problems are logged and skipped.
func prepareFromHistory(ctx context.Context, st *store.Store, plan *session.Plan, opts drillOptions) {
	if opts.autoLevel {
		snap, err := st.SnapshotRepo().Latest(ctx)
		switch {
		case err != nil:
			slog.Warn("load snapshot", "error", err)
		case snap != nil:
			plan.ApplyLevels(snap.Data.Levels)
			slog.Debug("levels restored", "snapshot", snap.ID)
		}
	}
	if opts.weakest {
		if err := session.WeakestFirst(ctx, plan, st.EventRepo()); err != nil {
			slog.Warn("order plan by accuracy", "error", err)
		}
	}
}

// saveSnapshot stores the plan levels and best streak as of now, tagged with
// the newest event sequence.
func saveSnapshot(ctx context.Context, repo store.SnapshotRepo, events store.EventRepo, state *session.SessionState, now time.Time) {
	best := state.BestStreak
	prev, err := repo.Latest(ctx)
	if err != nil {
		slog.Warn("load snapshot", "error", err)
	}
	levels := state.Plan.Levels()
	if prev != nil {
		if prev.Data.BestStreak > best {
			best = prev.Data.BestStreak
		}
		for k, lvl := range prev.Data.Levels {
			if _, ok := levels[k]; !ok {
				levels[k] = lvl
			}
		}
	}

	seq, err := events.LastSequence(ctx)
	if err != nil {
		slog.Warn("read last sequence", "error", err)
	}

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data:      store.SnapshotData{Version: 1, Levels: levels, BestStreak: best},
	}
	if err := repo.Save(ctx, snap); err != nil {
		slog.Warn("save snapshot", "error", err)
		return
	}
	if err := repo.Prune(ctx, snapshotsKept); err != nil {
		slog.Warn("prune snapshots", "error", err)
	}
}

// drillLoop serves up to questions exercises, reading one answer per line
// from in. It stops early on EOF or a quit command.
func drillLoop(in io.Reader, out io.Writer, state *session.SessionState, gen session.Generator, questions int) error {
	scanner := bufio.NewScanner(in)

	for i := 1; i <= questions; i++ {
		ex, err := session.Next(state, gen, time.Now())
		if err != nil {
			return err
		}
		info, _ := problemgen.Info(ex.Kind)
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Question %d of %d", i, questions))+"  "+
			theme.Hint.Render(fmt.Sprintf("%s · level %d", info.Name, ex.Level)))
		fmt.Fprintln(out, theme.Prompt.Render(ex.Text()))

		done, quit := readAnswer(scanner, out, state)
		if quit {
			state.Current = nil
			return nil
		}

		fmt.Fprintln(out, theme.Feedback(done.Correct, done.Exercise.AnswerString()))
		if done.Milestone > 0 {
			fmt.Fprintln(out, theme.StreakBanner(done.Milestone))
		}
		if done.LevelChange != 0 {
			fmt.Fprintln(out, theme.LevelBanner(done.LevelChange, done.NewLevel))
		}
		fmt.Fprintln(out)
	}
	return nil
}

// readAnswer prompts until a non-blank answer is graded. The second result
// is true on EOF or when the learner types q.
func readAnswer(scanner *bufio.Scanner, out io.Writer, state *session.SessionState) (*session.CompletedExercise, bool) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil, true
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return nil, true
		}

		done, err := session.HandleAnswer(state, line, time.Now())
		switch {
		case errors.Is(err, session.ErrEmptyAnswer):
			fmt.Fprintln(out, theme.Hint.Render("Type an answer, or q to stop."))
			continue
		case err != nil && done == nil:
			slog.Error("grade answer", "error", err)
			return nil, true
		case err != nil:
			slog.Warn("answer not recorded", "error", err)
		}
		return done, false
	}
}

// checkedGenerator runs the check chain on every exercise and regenerates
// once when a check fails.
type checkedGenerator struct {
	gen *problemgen.Generator
}

func (c checkedGenerator) Generate(k problemgen.Kind, level int, used problemgen.KeySet) (*problemgen.Exercise, error) {
	ex, err := c.gen.GenerateChecked(k, level, used)
	var cerr *problemgen.CheckError
	if !errors.As(err, &cerr) {
		return ex, err
	}
	slog.Warn("exercise failed check, regenerating", "kind", k, "level", level, "check", cerr.Check, "reason", cerr.Message)

	ex, err = c.gen.GenerateChecked(k, level, used)
	if errors.As(err, &cerr) {
		slog.Error("regenerated exercise failed check", "kind", k, "key", ex.Key, "check", cerr.Check, "reason", cerr.Message)
		return ex, nil
	}
	return ex, err
}

func printSummary(w io.Writer, s *session.SessionSummary) {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score:       %d / %d\n", s.TotalCorrect, s.TotalQuestions)
	fmt.Fprintf(&b, "Best streak: %d\n", s.BestStreak)
	fmt.Fprintf(&b, "Time:        %s\n", s.Duration.Round(time.Second))
	if len(s.KindResults) > 0 {
		b.WriteString("\n")
	}
	for _, kr := range s.KindResults {
		if kr.Attempted == 0 {
			continue
		}
		label := fmt.Sprintf("%-28s %2d/%-2d", kr.Name, kr.Correct, kr.Attempted)
		b.WriteString(components.NewProgressBar(label, kr.Accuracy(), true, 16).View())
		if kr.LevelAfter != kr.LevelBefore {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  level %d → %d", kr.LevelBefore, kr.LevelAfter)))
		}
		b.WriteString("\n")
	}
	fmt.Fprintln(w, theme.Card.Render(strings.TrimRight(b.String(), "\n")))
}
