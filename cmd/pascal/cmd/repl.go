package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pascal/internal/repl"
)

var replNoColor bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet die interaktive Eingabe",
	Long: `Liest Ausdrücke zeilenweise und gibt das Ergebnis aus.

Befehle:
  vars            Variablen anzeigen
  reset           Variablen löschen
  tokens <expr>   Tokens eines Ausdrucks anzeigen
  ast <expr>      Syntaxbaum eines Ausdrucks anzeigen
  help            Hilfe
  exit()          Beenden`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.PersistentFlags().BoolVar(&replNoColor, "no-color", false, "Farbige Ausgabe abschalten")
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, logger, session, err := newSession()
	if err != nil {
		return err
	}

	return repl.Run(cmd.Context(), repl.Options{
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Session:     session,
		Logger:      logger,
		Prompt:      cfg.REPL.Prompt,
		ExitCommand: cfg.REPL.ExitCommand,
		Color:       cfg.REPL.Color && !replNoColor,
	})
}
