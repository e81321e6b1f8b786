package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Assistant AssistantConfig `toml:"assistant"`
	Store     StoreConfig     `toml:"store"`
	Log       LogConfig       `toml:"log"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Type string `toml:"type,omitempty"` // "json" (default) or "badger"
}

// AssistantConfig holds settings from the [assistant] section.
type AssistantConfig struct {
	Model           string  `toml:"model,omitempty"`
	APIKey          string  `toml:"api_key,omitempty"`
	Temperature     float32 `toml:"temperature,omitempty"`
	MaxOutputTokens int32   `toml:"max_output_tokens,omitempty"`
	HistoryWindow   int     `toml:"history_window,omitempty"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Store types.
const (
	StoreJSON   = "json"
	StoreBadger = "badger"
)

// Defaults.
const (
	DefaultModel    = "gemini-2.0-flash"
	DefaultLogLevel = "info"
)

// File and directory names.
const (
	AppDirName     = "tasks"
	ConfigFileName = "config.toml"
	StoreFileName  = "tasks.json"
	BadgerDirName  = "kv"
	LogsDirName    = "logs"
	LogFileName    = "tasks.log"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	gen := DefaultGenerationOptions()
	return &Config{
		Store: StoreConfig{Type: StoreJSON},
		Assistant: AssistantConfig{
			Model:           DefaultModel,
			Temperature:     gen.Temperature,
			MaxOutputTokens: gen.MaxOutputTokens,
			HistoryWindow:   DefaultHistoryWindow,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// GenerationOptions returns the generation settings of the assistant section.
func (c *Config) GenerationOptions() GenerationOptions {
	return GenerationOptions{
		Temperature:     c.Assistant.Temperature,
		MaxOutputTokens: c.Assistant.MaxOutputTokens,
	}
}

// GlobalAppDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DefaultDataDir returns the data directory under the user's data home.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DefaultDataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// GlobalLogPath returns the log file path inside a data directory.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, LogFileName)
}

// templateData holds all data for rendering the config template.
type templateData struct {
	StoreType       string
	Model           string
	LogLevel        string
	Temperature     float32
	MaxOutputTokens int32
	HistoryWindow   int
}

// RenderConfigTemplate renders a commented config file from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		StoreType:       cfg.Store.Type,
		Model:           cfg.Assistant.Model,
		Temperature:     cfg.Assistant.Temperature,
		MaxOutputTokens: cfg.Assistant.MaxOutputTokens,
		HistoryWindow:   cfg.Assistant.HistoryWindow,
		LogLevel:        cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
