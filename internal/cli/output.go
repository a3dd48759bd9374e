package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputResults writes v to w in the requested format. Supported formats
// are "yaml" and "json"; anything else is an error so typos surface
// instead of silently printing Go syntax.
func OutputResults(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q (use yaml or json)", format)
	}
}
