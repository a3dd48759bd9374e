package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Popups PopupSettings  `yaml:"popups"`
	Editor EditorSettings `yaml:"editor"`
}

// UISettings controls inspector UI preferences
type UISettings struct {
	ShowContextPane bool   `yaml:"show_context_pane"`
	SnapshotFormat  string `yaml:"snapshot_format"` // "yaml" or "json"
	TabWidth        int    `yaml:"tab_width"`       // max rendered tab title width
}

// PopupSettings controls contextual popup behavior
type PopupSettings struct {
	ShowDelayMs int  `yaml:"show_delay_ms"` // debounce before a popup opens
	AutoSelect  bool `yaml:"auto_select"`   // auto-select word/link content before format UI
}

// EditorSettings controls external editor preferences
type EditorSettings struct {
	Command        string `yaml:"command"`
	PreferInternal bool   `yaml:"prefer_internal"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowContextPane: true,
			SnapshotFormat:  "yaml",
			TabWidth:        20,
		},
		Popups: PopupSettings{
			ShowDelayMs: 120,
			AutoSelect:  true,
		},
		Editor: EditorSettings{
			Command:        "",
			PreferInternal: true,
		},
	}
}
