package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/deskcalc/internal/config"
	"github.com/san-kum/deskcalc/internal/engine"
	"github.com/san-kum/deskcalc/internal/keymap"
	"github.com/san-kum/deskcalc/internal/tui"
)

var (
	configFile string
	themeName  string
	noKeypad   bool
	verbose    bool
	trace      bool
)

// main is the entry point for the deskcalc CLI; it registers commands and
// flags and opens the interactive calculator when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "deskcalc",
		Short: "terminal desk calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme name")
	rootCmd.Flags().BoolVar(&noKeypad, "no-keypad", false, "hide the on-screen keypad")

	evalCmd := &cobra.Command{
		Use:   "eval [tokens...]",
		Short: "evaluate a sequence of key tokens",
		Long: `Evaluate key tokens without the interactive view.

Tokens use the keyboard characters (digits, . + - * x / % =) plus the
display glyphs − × ÷, "c" for clear and "~" for sign toggle.

  deskcalc eval "12+3="
  deskcalc eval 2 + 3 x 4 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	evalCmd.Flags().BoolVar(&trace, "trace", false, "print the state after each token")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "show the keyboard mapping",
		RunE:  runKeys,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tui.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(evalCmd, keysCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig resolves preferences in order: defaults, config file,
// environment, CLI flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("loaded config file", "path", configFile)
	}

	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}

	if themeName != "" {
		cfg.Theme = themeName
	}
	if noKeypad {
		cfg.Keypad = false
	}

	slog.Debug("resolved config", "theme", cfg.Theme, "keypad", cfg.Keypad)
	return cfg, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	state := engine.InitialState()

	var w *tabwriter.Writer
	if trace {
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOKEN\tDISPLAY\tPENDING")
	}

	for _, token := range args {
		actions := keymap.Scan(token)
		slog.Debug("scanned token", "token", token, "actions", len(actions))
		for _, a := range actions {
			state = engine.Reduce(state, a)
		}
		if trace {
			fmt.Fprintf(w, "%s\t%s\t%s\n", token, state.Display, pendingLabel(state))
		}
	}

	if trace {
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Println(state.Display)
	return nil
}

func pendingLabel(s engine.State) string {
	if !s.Pending() {
		return "-"
	}
	return fmt.Sprintf("%s %s", engine.FormatValue(s.Acc), s.Op)
}

func runKeys(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEYS\tACTION")
	for _, b := range keymap.Bindings() {
		fmt.Fprintf(w, "%s\t%s\n", b.Keys, b.Action)
	}
	return w.Flush()
}
