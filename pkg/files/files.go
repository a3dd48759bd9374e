package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quillmd/quill-cli/pkg/models"
)

// QuillDir is the per-project configuration directory.
const QuillDir = ".quill"

// SettingsFile is the settings filename inside QuillDir.
const SettingsFile = "settings.yaml"

// SettingsPath returns the path of the settings file.
func SettingsPath() string {
	return filepath.Join(QuillDir, SettingsFile)
}

// ReadSettings loads settings from the project directory. A missing file
// yields the defaults, not an error.
func ReadSettings() (*models.Settings, error) {
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// WriteSettings persists settings, creating the project directory if
// needed.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(QuillDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", QuillDir, err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(SettingsPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ReadDocument loads a markdown file.
func ReadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return data, nil
}
