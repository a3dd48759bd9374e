package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quillmd/quill-cli/cmd/commands"
	"github.com/quillmd/quill-cli/pkg/files"
	"github.com/quillmd/quill-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "quill [files...]",
	Short: "Terminal-based inspector for markdown cursor context",
	Long:  `Quill is a terminal-based inspector for markdown documents. It parses a document, tracks a cursor through it, and shows the contextual-toolbar decisions an editor would make at every position. Each file argument opens in its own tab.`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := files.ReadSettings()
		if err != nil {
			return err
		}

		for _, path := range args {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
		}

		app := tui.NewApp(args, settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Quill",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Quill version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "yaml", "Output format (yaml or json)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewContextCommand())
	rootCmd.AddCommand(commands.NewBoundsCommand())
	rootCmd.AddCommand(commands.NewExpandCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
