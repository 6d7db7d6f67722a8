package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Themes the terminal renderer understands.
var Themes = []string{"light", "dark", "brutalist", "mono"}

// Config holds travelog's settings.
type Config struct {
	// JournalPath is the SQLite journal database location.
	JournalPath string `toml:"journal_path"`
	// SearchDebounce is how long palette input must be quiet before a
	// search fires.
	SearchDebounce Duration `toml:"search_debounce"`
	// ResultsLimit caps the number of search results.
	ResultsLimit int `toml:"results_limit"`
	// HistoryLimit caps the remembered search queries.
	HistoryLimit int `toml:"history_limit"`
	// Theme selects the terminal color theme.
	Theme string `toml:"theme"`
}

// Duration wraps time.Duration for TOML round-tripping.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// GetDefaultConfig returns a config with all defaults filled in.
func GetDefaultConfig() (*Config, error) {
	journalPath, err := GetDefaultJournalPath()
	if err != nil {
		return nil, fmt.Errorf("getting default journal path: %w", err)
	}
	return &Config{
		JournalPath:    journalPath,
		SearchDebounce: Duration{200 * time.Millisecond},
		ResultsLimit:   10,
		HistoryLimit:   5,
		Theme:          "mono",
	}, nil
}

// LoadConfig reads the config at configPath, falling back to defaults
// when the file does not exist and filling in any missing values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.JournalPath == "" {
		journalPath, err := GetDefaultJournalPath()
		if err != nil {
			return nil, fmt.Errorf("getting default journal path: %w", err)
		}
		config.JournalPath = journalPath
	}
	if config.SearchDebounce.Duration == 0 {
		config.SearchDebounce = Duration{200 * time.Millisecond}
	}
	if config.ResultsLimit <= 0 {
		config.ResultsLimit = 10
	}
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = 5
	}
	if !validTheme(config.Theme) {
		config.Theme = "mono"
	}

	return &config, nil
}

// SaveConfig writes the config as TOML, creating parent directories.
func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

func validTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// GetDefaultStorageDir returns the data directory for the journal,
// honoring XDG_DATA_HOME.
func GetDefaultStorageDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	dir := filepath.Join(dataDir, "travelog")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	return dir, nil
}

// GetDefaultJournalPath returns the default journal database path.
func GetDefaultJournalPath() (string, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(storageDir, "travelog.db"), nil
}

// GetConfigDir returns the configuration directory, honoring
// XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "travelog")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return dir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
