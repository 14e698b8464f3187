package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List exercise kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, _ := cmd.Flags().GetString("strand")

		strands := problemgen.AllStrands()
		if strand != "" {
			strands = []problemgen.Strand{problemgen.Strand(strand)}
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-34s %-28s %s\n", "KIND", "NAME", "VALIDATOR")
		fmt.Fprintln(w, strings.Repeat("─", 80))

		var n int
		for _, s := range strands {
			infos := problemgen.ByStrand(s)
			if len(infos) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n%s\n", problemgen.StrandDisplayName(s))
			for _, info := range infos {
				fmt.Fprintf(w, "  %-32s %-28s %s\n", info.Kind, info.Name, info.Validator)
				n++
			}
		}
		if n == 0 {
			return fmt.Errorf("no kinds in strand %q", strand)
		}
		fmt.Fprintf(w, "\n%d kind(s)\n", n)
		return nil
	},
}

func init() {
	kindsCmd.Flags().String("strand", "", "Only list kinds in this strand")
}
