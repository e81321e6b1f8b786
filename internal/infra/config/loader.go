// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/sevencode7/tasks/internal/domain"
)

// Environment variables that override file settings.
const (
	EnvAPIKey  = "GEMINI_API_KEY"
	EnvStore   = "TASKS_STORE"
	EnvDataDir = "TASKS_DATA_DIR"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	getenv        func(string) string
	dataDir       string // Path to the data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/tasks)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// DefaultDataDir resolves the data directory: TASKS_DATA_DIR, then
// XDG_DATA_HOME/tasks, then ~/.local/share/tasks.
func DefaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DefaultDataDir(dataHome)
}

// Load returns the merged configuration (default <- global <- data dir <- env).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.loadFile(filepath.Join(l.dataDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	l.applyEnv(base)

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

func (l *Loader) applyEnv(cfg *domain.Config) {
	if key := l.getenv(EnvAPIKey); key != "" {
		cfg.Assistant.APIKey = key
	}
	if store := l.getenv(EnvStore); store != "" {
		cfg.Store.Type = store
	}
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "type":
					if s, ok := v.(string); ok {
						res.Store.Type = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "assistant":
			for k, v := range m {
				switch k {
				case "model":
					if s, ok := v.(string); ok {
						res.Assistant.Model = s
					}
				case "api_key":
					if s, ok := v.(string); ok {
						res.Assistant.APIKey = s
					}
				case "temperature":
					if f, ok := toFloat(v); ok {
						res.Assistant.Temperature = float32(f)
					}
				case "max_output_tokens":
					if n, ok := v.(int64); ok {
						res.Assistant.MaxOutputTokens = int32(n)
					}
				case "history_window":
					if n, ok := v.(int64); ok {
						res.Assistant.HistoryWindow = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [assistant]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Assistant: base.Assistant,
		Store:     base.Store,
		Log:       base.Log,
		Warnings:  append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Type != "" {
		result.Store.Type = override.Store.Type
	}
	if override.Assistant.Model != "" {
		result.Assistant.Model = override.Assistant.Model
	}
	if override.Assistant.APIKey != "" {
		result.Assistant.APIKey = override.Assistant.APIKey
	}
	if override.Assistant.Temperature != 0 {
		result.Assistant.Temperature = override.Assistant.Temperature
	}
	if override.Assistant.MaxOutputTokens != 0 {
		result.Assistant.MaxOutputTokens = override.Assistant.MaxOutputTokens
	}
	if override.Assistant.HistoryWindow != 0 {
		result.Assistant.HistoryWindow = override.Assistant.HistoryWindow
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
