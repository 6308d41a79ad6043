package cmd

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/abacus/internal/app"
	"github.com/zhubert/abacus/internal/config"
	"github.com/zhubert/abacus/internal/history"
	"github.com/zhubert/abacus/internal/logger"
	"github.com/zhubert/abacus/internal/storage"
)

var (
	debugMode             bool
	quietMode             bool
	clearLogs             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Terminal calculator with history and unit conversion",
	Long: `Abacus is a terminal calculator. Type or click an expression, press = to
evaluate it, and revisit the last ten results in the history panel. A unit
conversion panel covers length, weight, temperature and currency.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().BoolVar(&clearLogs, "clear-logs", false, "Remove the debug log file and exit")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("abacus %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("abacus %s\n", version)
}

// openHistory loads the config and the history store it points at. The
// caller closes the returned slot.
func openHistory() (*config.Config, *history.Store, storage.Slot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	slot, err := cfg.OpenStorage()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening storage: %w", err)
	}
	store := history.NewStore(slot)
	if err := store.Load(); err != nil {
		slot.Close()
		return nil, nil, nil, fmt.Errorf("error loading history: %w", err)
	}
	return cfg, store, slot, nil
}

// loadTUIConfig loads the config, falling back to defaults bound to the same
// path when the file is unreadable or invalid. The returned warning is empty
// when the file loaded cleanly.
func loadTUIConfig() (*config.Config, string) {
	cfg, err := config.Load()
	if err == nil {
		return cfg, ""
	}
	logger.Warn("config unusable, using defaults: %v", err)
	path, perr := config.Path()
	if perr != nil {
		logger.Warn("config path unavailable, settings will not be saved: %v", perr)
	}
	return config.Defaults(path), "Settings could not be read, using defaults"
}

func runTUI(cmd *cobra.Command, args []string) error {
	if clearLogs {
		n, err := logger.ClearLogs()
		if err != nil {
			return fmt.Errorf("error clearing logs: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d log file(s).\n", n)
		return nil
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, warning := loadTUIConfig()
	var warnings []string
	if warning != "" {
		warnings = append(warnings, warning)
	}

	// Storage problems never stop the calculator; fall back to memory.
	slot, err := cfg.OpenStorage()
	if err != nil {
		logger.Warn("storage unavailable, history will not persist: %v", err)
		warnings = append(warnings, "History will not be saved this session")
		slot = storage.NewMemorySlot()
	}
	defer slot.Close()

	store := history.NewStore(slot)
	if err := store.Load(); err != nil {
		logger.Warn("could not read history: %v", err)
		warnings = append(warnings, "Could not read saved history")
	}

	m := app.New(cfg, store, version)
	if len(warnings) > 0 {
		m.ShowFlashWarning(strings.Join(warnings, "; "))
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
