package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/abacus/internal/config"
	"github.com/zhubert/abacus/internal/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes",
	Long:  `Lists the available themes. The configured one is marked with *. Press t in the calculator to cycle.`,
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	current := ui.ThemeName(cfg.GetTheme())
	for _, name := range ui.ThemeNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		theme := ui.GetTheme(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-6s %s %s\n", marker, name, theme.Icon, theme.Name)
	}
	return nil
}
