package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillmd/quill-cli/internal/cli"
	"github.com/quillmd/quill-cli/pkg/cursor"
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/files"
	"github.com/quillmd/quill-cli/pkg/models"
)

var (
	contextPos int
	contextTo  int
)

// NewContextCommand creates the context command
func NewContextCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context <file>",
		Short: "Show the cursor context at a document position",
		Long: `Parse a markdown file and print the full cursor context snapshot
for a position, including the resolved toolbar mode.

Positions count document tokens: each element contributes an opening
and closing token and text contributes one token per character.

Examples:
  # Context for a caret
  quill context notes.md --pos 12

  # Context for a selection
  quill context notes.md --pos 4 --to 19

  # Output as JSON
  quill context notes.md --pos 12 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runContext,
	}

	cmd.Flags().IntVar(&contextPos, "pos", 0, "Cursor position (required)")
	cmd.Flags().IntVar(&contextTo, "to", -1, "Selection end position (defaults to a caret)")
	cmd.MarkFlagRequired("pos")

	return cmd
}

func runContext(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	data, err := files.ReadDocument(args[0])
	if err != nil {
		return err
	}
	tree := doctree.ParseMarkdown(data)

	sel := models.Caret(models.Position(contextPos))
	if contextTo >= 0 {
		sel = models.Range{From: models.Position(contextPos), To: models.Position(contextTo)}
	}
	if sel.From < 0 || sel.To > tree.Size() {
		return fmt.Errorf("position out of range: document has %d positions", tree.Size())
	}

	ctx := cursor.BuildContext(tree, sel)
	return cli.OutputResults(cmd.OutOrStdout(), outputFormat, ctx)
}
