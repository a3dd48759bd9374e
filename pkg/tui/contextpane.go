package tui

import (
	"encoding/json"
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"github.com/quillmd/quill-cli/pkg/models"
)

// renderSnapshot serializes a context snapshot in the configured format.
func renderSnapshot(ctx *models.CursorContext, format string) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("no context available")
	}
	switch format {
	case "json":
		data, err := json.MarshalIndent(ctx, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := yaml.Marshal(ctx)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// renderContextPane renders the snapshot wrapped to the pane width.
func renderContextPane(ctx *models.CursorContext, format string, width int) string {
	body, err := renderSnapshot(ctx, format)
	if err != nil {
		body = err.Error()
	}
	if width > 0 {
		body = wordwrap.String(body, width)
	}
	return paneTitleStyle.Render("context") + "\n" + body
}
