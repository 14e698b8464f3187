package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accuracy per exercise kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		rows, err := st.EventRepo().AccuracyByKind(ctx)
		if err != nil {
			return fmt.Errorf("aggregate answers: %w", err)
		}
		w := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(w, "No answers recorded yet. Run 'mathdrill drill' to start.")
			return nil
		}

		var attempts, correct int
		var b strings.Builder
		b.WriteString(theme.Title.Render("Accuracy by kind"))
		b.WriteString("\n\n")
		for _, row := range rows {
			attempts += row.Attempts
			correct += row.Correct
			b.WriteString(components.NewProgressBar(kindLabel(row), row.Accuracy(), true, 20).View())
			b.WriteString("\n")
		}
		total := store.KindAccuracy{Kind: "all", Attempts: attempts, Correct: correct}
		fmt.Fprintf(&b, "\nOverall: %d/%d (%.0f%%)", correct, attempts, total.Accuracy()*100)

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			fmt.Fprintf(&b, "\nBest streak: %d", snap.Data.BestStreak)
		}

		fmt.Fprintln(w, theme.Card.Render(b.String()))
		return nil
	},
}

func kindLabel(row store.KindAccuracy) string {
	name := row.Kind
	if info, err := problemgen.Info(problemgen.Kind(row.Kind)); err == nil {
		name = info.Name
	}
	return fmt.Sprintf("%-28s %4d/%-4d", name, row.Correct, row.Attempts)
}
