package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/ui/theme"
	"github.com/spf13/cobra"
)

// errIncorrect makes the process exit non-zero for a wrong answer.
var errIncorrect = errors.New("answer is incorrect")

var checkCmd = &cobra.Command{
	Use:   "check <answer> <correct>",
	Short: "Grade an answer, or validate exercise JSON",
	Long: `Grade a learner answer against a canonical answer with one of the
validators: numberValidator, fractionValidator or decimalValidator. The
validator is chosen with --validator, or from an exercise kind with --kind.

With --json, read exercises (one JSON object per line, as printed by
'mathdrill generate --json') from stdin and validate each against the
exercise schema.`,
	Example: `  mathdrill check --validator fractionValidator 2/4 1/2
  mathdrill check --kind orderOfOperations 3.333 3.33
  mathdrill generate --kind placeValue --json | mathdrill check --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return checkJSON(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		if len(args) != 2 {
			return fmt.Errorf("expected <answer> <correct>, got %d argument(s)", len(args))
		}

		name, err := resolveValidator(cmd)
		if err != nil {
			return err
		}
		ok, err := problemgen.Validate(name, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Feedback(ok, args[1]))
		if !ok {
			return errIncorrect
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("validator", "", "Validator name")
	checkCmd.Flags().String("kind", "", "Exercise kind whose validator to use")
	checkCmd.Flags().Bool("json", false, "Validate exercise JSON lines read from stdin")
	checkCmd.MarkFlagsMutuallyExclusive("validator", "kind")
}

func resolveValidator(cmd *cobra.Command) (problemgen.ValidatorName, error) {
	if v, _ := cmd.Flags().GetString("validator"); v != "" {
		return problemgen.ParseValidator(v)
	}
	if k, _ := cmd.Flags().GetString("kind"); k != "" {
		kind, err := problemgen.ParseKind(k)
		if err != nil {
			return "", err
		}
		info, err := problemgen.Info(kind)
		if err != nil {
			return "", err
		}
		return info.Validator, nil
	}
	return problemgen.NumberValidator, nil
}

// checkJSON validates each non-blank line of r as one exercise. It
// reports every invalid line and fails if any was invalid.
func checkJSON(r io.Reader, w io.Writer) error {
	lines, err := readLines(r)
	if err != nil {
		return err
	}

	var bad int
	for i, line := range lines {
		if err := problemgen.ValidateJSON([]byte(line)); err != nil {
			bad++
			fmt.Fprintf(w, "exercise %d: %v\n", i+1, err)
		}
	}
	fmt.Fprintf(w, "%d exercise(s) checked, %d invalid\n", len(lines), bad)
	if bad > 0 {
		return fmt.Errorf("%d invalid exercise(s)", bad)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
