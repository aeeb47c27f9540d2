package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pascal/foundation/calc"
	"github.com/msto63/pascal/pkg/core/config"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
	"github.com/msto63/pascal/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive TUI",
	Long: `Startet die Terminal User Interface (TUI) des Rechners.

Navigation:
  Enter     - Ausdruck auswerten
  ↑/↓       - Verlauf durchblättern
  PgUp/PgDn - Ausgabe scrollen
  Ctrl+L    - Ausgabe leeren
  Esc       - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return tui.Run(tuiConfig(cfg))
}

// tuiConfig builds the TUI settings from the repl section of cfg
func tuiConfig(cfg *config.Config) tui.Config {
	// the alternate screen owns the terminal, log lines would corrupt it
	logger := mdwlog.Discard()
	return tui.Config{
		Session:     calc.NewSession(cfg.SessionOptions(logger)),
		Logger:      logger,
		Prompt:      cfg.REPL.Prompt,
		ExitCommand: cfg.REPL.ExitCommand,
	}
}
