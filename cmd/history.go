package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently answered exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		sessionID, _ := cmd.Flags().GetString("session")
		sessions, _ := cmd.Flags().GetBool("sessions")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		opts := store.QueryOpts{Limit: limit, SessionID: sessionID, Kind: kind}
		w := cmd.OutOrStdout()

		if sessions {
			events, err := st.EventRepo().QuerySessionEvents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query session events: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(w, "No sessions found.")
				return nil
			}
			fmt.Fprintf(w, "%-6s %-20s %-36s %-6s %-8s %-7s %s\n", "SEQ", "TIME", "SESSION", "ACTION", "SCORE", "STREAK", "DURATION")
			fmt.Fprintln(w, strings.Repeat("─", 100))
			for _, e := range events {
				score := "-"
				if e.Action == store.ActionEnd {
					score = fmt.Sprintf("%d/%d", e.CorrectAnswers, e.QuestionsServed)
				}
				fmt.Fprintf(w, "%-6d %-20s %-36s %-6s %-8s %-7d %ds\n",
					e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.SessionID,
					e.Action, score, e.BestStreak, e.DurationSecs)
			}
			return nil
		}

		events, err := st.EventRepo().QueryAnswerEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query answer events: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(w, "No answers found.")
			return nil
		}

		fmt.Fprintf(w, "%-6s %-20s %-32s %-3s %-28s %-10s %-10s %s\n", "SEQ", "TIME", "KIND", "LVL", "QUESTION", "ANSWER", "EXPECTED", "OK")
		fmt.Fprintln(w, strings.Repeat("─", 120))
		for _, e := range events {
			mark := "✗"
			if e.Correct {
				mark = "✓"
			}
			fmt.Fprintf(w, "%-6d %-20s %-32s %-3d %-28s %-10s %-10s %s\n",
				e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Kind, e.Level,
				truncate(e.QuestionText, 28), truncate(e.LearnerAnswer, 10), e.CorrectAnswer, mark)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Max results to show")
	historyCmd.Flags().String("kind", "", "Filter answers by exercise kind")
	historyCmd.Flags().String("session", "", "Filter by session ID")
	historyCmd.Flags().Bool("sessions", false, "List session start and end events instead of answers")
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
