package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillmd/quill-cli/internal/cli"
	"github.com/quillmd/quill-cli/pkg/files"
	"github.com/quillmd/quill-cli/pkg/listblock"
)

var boundsLine int

// NewBoundsCommand creates the bounds command
func NewBoundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounds <file>",
		Short: "Show the list block surrounding a line",
		Long: `Find the contiguous list block containing a line of a markdown
file and print its line range. Lines are zero-based.

Blank lines inside a list bridge to the next item; a paragraph or a
horizontal rule ends the block.

Examples:
  quill bounds notes.md --line 4
  quill bounds notes.md --line 4 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runBounds,
	}

	cmd.Flags().IntVar(&boundsLine, "line", 0, "Zero-based line number (required)")
	cmd.MarkFlagRequired("line")

	return cmd
}

type boundsResult struct {
	Line    int                  `yaml:"line" json:"line"`
	InList  bool                 `yaml:"inList" json:"inList"`
	Bounds  *listblock.LineRange `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Content []string             `yaml:"content,omitempty" json:"content,omitempty"`
}

func runBounds(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	data, err := files.ReadDocument(args[0])
	if err != nil {
		return err
	}
	lines := strings.Split(string(data), "\n")
	if boundsLine < 0 || boundsLine >= len(lines) {
		return fmt.Errorf("line %d out of range: file has %d lines", boundsLine, len(lines))
	}

	result := boundsResult{Line: boundsLine}
	if bounds := listblock.Bounds(string(data), boundsLine); bounds != nil {
		result.InList = true
		result.Bounds = bounds
		result.Content = lines[bounds.Start : bounds.End+1]
	}
	return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
}
