package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <ausdruck>...",
	Short: "Wertet Ausdrücke aus",
	Long: `Wertet jedes Argument als eigene Zeile in einer gemeinsamen Sitzung aus.
Beim ersten Fehler bricht der Befehl mit Exit-Code 1 ab.

Beispiele:
  pascal eval "1 + 2 * 3"
  pascal eval "var netto = 100" "netto * 1.19"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	_, _, session, err := newSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range args {
		value, err := session.Eval(line)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		if !value.IsVoid() {
			fmt.Fprintln(out, value)
		}
	}
	return nil
}
