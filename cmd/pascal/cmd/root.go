package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pascal/foundation/calc"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
	"github.com/msto63/pascal/pkg/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pascal",
	Short: "pascal - Rechner mit exakter Dezimalarithmetik",
	Long: `pascal wertet Ausdrücke mit exakter Dezimalarithmetik aus.

Sprache:
  1 + 2 * 3          Arithmetik (+ - * / % ^)
  var x = 10         Variablen (einmalig zuweisbar)
  x >= 5 && !0       Vergleiche und Logik

Ohne Unterkommando startet die interaktive Eingabe (repl).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// assigned here to avoid an initialization cycle through newSession
	rootCmd.RunE = runREPL
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig reads --config, $PASCAL_CONFIG or the default locations and
// falls back to built-in defaults plus environment overrides when no file
// exists
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
		// a file named by PASCAL_CONFIG must exist, the default paths are optional
		if mdwerror.HasCode(err, mdwerror.CodeNotFound) && mdwerror.GetSeverity(err) == mdwerror.SeverityLow {
			cfg, err = config.Parse(nil, config.FormatTOML)
		}
	}
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.General.LogLevel = mdwlog.LevelDebug.String()
	}
	return cfg, nil
}

// newSession loads the configuration and creates a calculator session
func newSession() (*config.Config, *mdwlog.Logger, *calc.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := cfg.NewLogger(rootCmd.ErrOrStderr())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, calc.NewSession(cfg.SessionOptions(logger)), nil
}
