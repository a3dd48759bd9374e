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
	expandFrom int
	expandTo   int
)

// NewExpandCommand creates the expand command
func NewExpandCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <file>",
		Short: "Show the progressive selection expansion sequence",
		Long: `Compute progressive selection expansion from the given range: each
step grows the selection to the span of the innermost container
strictly containing it, ending with the whole document.

Examples:
  quill expand notes.md --from 3 --to 3
  quill expand notes.md --from 2 --to 7 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runExpand,
	}

	cmd.Flags().IntVar(&expandFrom, "from", 0, "Selection start (required)")
	cmd.Flags().IntVar(&expandTo, "to", 0, "Selection end (required)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

type expandResult struct {
	Selection models.Range   `yaml:"selection" json:"selection"`
	Steps     []models.Range `yaml:"steps" json:"steps"`
}

func runExpand(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	data, err := files.ReadDocument(args[0])
	if err != nil {
		return err
	}
	tree := doctree.ParseMarkdown(data)

	sel := models.Range{From: models.Position(expandFrom), To: models.Position(expandTo)}
	if sel.From < 0 || sel.To > tree.Size() || sel.From > sel.To {
		return fmt.Errorf("invalid range: document has %d positions", tree.Size())
	}

	result := expandResult{Selection: sel}
	cur := sel
	for {
		expanded, grew := cursor.ExpandSelection(tree, cur)
		if !grew {
			break
		}
		result.Steps = append(result.Steps, expanded)
		cur = expanded
	}
	return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
}
