package domain

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string   `toml:"-"`
	View     ViewConfig `toml:"view"`
	Log      LogConfig  `toml:"log"`
	Seed     SeedConfig `toml:"seed"`
	TUI      TUIConfig  `toml:"tui"`
}

// ViewConfig holds the initial view state from the [view] section.
type ViewConfig struct {
	Default string `toml:"default,omitempty"` // Initial tab: inbox, project or trash
	Sort    string `toml:"sort,omitempty"`    // Initial sort type
	Query   string `toml:"query,omitempty"`   // Initial filter as a URL query string
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn or error
	File  string `toml:"file,omitempty"`  // Log file path (empty = stderr)
}

// SeedConfig holds the task seed file location from the [seed] section.
type SeedConfig struct {
	File string `toml:"file,omitempty"` // YAML or TOML file with initial tasks
}

// TUIConfig holds settings for the terminal UI from the [tui] section.
type TUIConfig struct {
	TitleWidth int `toml:"title_width,omitempty"` // Max title width before truncation
}

// LoadConfigOptions selects which configuration sources are read.
type LoadConfigOptions struct {
	IgnoreGlobal  bool // Skip ~/.config/taskboard/config.toml
	IgnoreProject bool // Skip ./.taskboard.toml
}

// Default configuration values.
const (
	DefaultLogLevel   = "info"
	DefaultTitleWidth = 48
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		View: ViewConfig{
			Default: string(ViewInbox),
			Sort:    string(SortManual),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		TUI: TUIConfig{
			TitleWidth: DefaultTitleWidth,
		},
	}
}

// InitialViewState returns the view state described by the [view] section.
// Invalid values fall back to the defaults. The query is applied by the caller
// because decoding it belongs to the URL codec.
func (c *Config) InitialViewState() ViewState {
	v := ViewState{}
	if vt := ViewType(c.View.Default); vt.IsValid() {
		v.View = vt
	}
	if st := SortType(c.View.Sort); st.IsValid() {
		v.Sort = st
	}
	return NewViewState(v)
}

// RenderConfigTemplate renders the commented default configuration.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
