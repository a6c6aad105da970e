package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leprpht/autoclick/internal/script"
)

var checkCmd = &cobra.Command{
	Use:   "check <script-file>",
	Short: "Validate a script without executing it",
	Long: `Check parses a script and reports what a run would complain about:
unterminated REPEAT blocks (errors, the run would abort), and
unrecognized commands, unknown key names or malformed arguments
(warnings, those lines would be skipped).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading script: %w", err)
		}

		cmds := script.ParseScript(string(data))
		problems := script.Check(cmds)

		errColor := color.New(color.FgRed).SprintFunc()
		warnColor := color.New(color.FgYellow).SprintFunc()

		errorCount := 0
		for _, p := range problems {
			label := warnColor("warning")
			if p.Severity == "error" {
				label = errColor("error")
				errorCount++
			}
			fmt.Printf("%s:%d: %s: %s\n", args[0], p.Line, label, p.Message)
		}

		if errorCount > 0 {
			return fmt.Errorf("%d structural error(s) in %s", errorCount, args[0])
		}
		fmt.Printf("%s: %d line(s), %d warning(s)\n", args[0], len(cmds), len(problems))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
