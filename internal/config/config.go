package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the workspace layout convention, browsing behavior,
// and the marker file written after a successful selection.
type Config struct {
	Workspace struct {
		RequiredDirs []string `yaml:"required_dirs"` // Subdirectories a workspace must contain, checked in order
		NoteGlob     string   `yaml:"note_glob"`     // Pattern matching note files for the informational counts
		CountDirs    []string `yaml:"count_dirs"`    // Subdirectories whose note files are counted
	} `yaml:"workspace"`
	Browse struct {
		StartDir      string   `yaml:"start_dir"`      // Directory the browser opens in (default: working directory)
		ShowHidden    []string `yaml:"show_hidden"`    // Hidden names still shown in listings
		AutoRefresh   bool     `yaml:"auto_refresh"`   // Refresh the listing when the directory changes on disk
		DebounceMilli int      `yaml:"debounce_milli"` // Delay before an auto-refresh fires
	} `yaml:"browse"`
	Marker struct {
		Filename string `yaml:"filename"` // Name of the marker file written into the selected workspace
		Message  string `yaml:"message"`  // Marker file contents
	} `yaml:"marker"`
	Theme struct {
		Primary string `yaml:"primary"` // Primary color for titles and borders
		Success string `yaml:"success"` // Valid-workspace color
		Error   string `yaml:"error"`   // Invalid-workspace / error color
		Muted   string `yaml:"muted"`   // Help text and secondary details
	} `yaml:"theme"`
	Settings struct {
		Debug   bool   `yaml:"debug"`    // Enable debug logging
		LogFile string `yaml:"log_file"` // Log destination (the TUI owns stdout)
	} `yaml:"settings"`
}

// LoadConfig loads configuration from the default location
// (~/.config/logpick/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "logpick", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if len(tempCfg.Workspace.RequiredDirs) > 0 {
		cfg.Workspace.RequiredDirs = tempCfg.Workspace.RequiredDirs
	}
	if tempCfg.Workspace.NoteGlob != "" {
		cfg.Workspace.NoteGlob = tempCfg.Workspace.NoteGlob
	}
	if len(tempCfg.Workspace.CountDirs) > 0 {
		cfg.Workspace.CountDirs = tempCfg.Workspace.CountDirs
	}
	if tempCfg.Browse.StartDir != "" {
		cfg.Browse.StartDir = tempCfg.Browse.StartDir
	}
	if len(tempCfg.Browse.ShowHidden) > 0 {
		cfg.Browse.ShowHidden = tempCfg.Browse.ShowHidden
	}
	cfg.Browse.AutoRefresh = tempCfg.Browse.AutoRefresh
	if tempCfg.Browse.DebounceMilli > 0 {
		cfg.Browse.DebounceMilli = tempCfg.Browse.DebounceMilli
	}
	if tempCfg.Marker.Filename != "" {
		cfg.Marker.Filename = tempCfg.Marker.Filename
	}
	if tempCfg.Marker.Message != "" {
		cfg.Marker.Message = tempCfg.Marker.Message
	}
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Success != "" {
		cfg.Theme.Success = tempCfg.Theme.Success
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}
	if tempCfg.Theme.Muted != "" {
		cfg.Theme.Muted = tempCfg.Theme.Muted
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Settings.LogFile != "" {
		cfg.Settings.LogFile = tempCfg.Settings.LogFile
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// LogSeq workspace convention
	cfg.Workspace.RequiredDirs = []string{"logseq", "pages", "journals"}
	cfg.Workspace.NoteGlob = "*.md"
	cfg.Workspace.CountDirs = []string{"pages", "journals"}

	cfg.Browse.StartDir = "" // Resolved to the working directory at startup
	cfg.Browse.ShowHidden = []string{".logseq"}
	cfg.Browse.AutoRefresh = true
	cfg.Browse.DebounceMilli = 250

	cfg.Marker.Filename = "syncall.md"
	cfg.Marker.Message = "## Yay, succesfully prepared the logseq git sync files\n"

	cfg.Theme.Primary = "#7B61FF"
	cfg.Theme.Success = "#73F59F"
	cfg.Theme.Error = "#FF5F5F"
	cfg.Theme.Muted = "#666666"

	cfg.Settings.Debug = false
	cfg.Settings.LogFile = ""

	return cfg
}

// Validate checks the configuration for values the browser can't work with.
func (c *Config) Validate() error {
	if len(c.Workspace.RequiredDirs) == 0 {
		return fmt.Errorf("workspace.required_dirs must not be empty")
	}
	for _, d := range c.Workspace.RequiredDirs {
		if d == "" || d != filepath.Base(d) {
			return fmt.Errorf("workspace.required_dirs entry %q must be a bare directory name", d)
		}
	}
	if _, err := glob.Compile(c.Workspace.NoteGlob); err != nil {
		return fmt.Errorf("workspace.note_glob %q: %w", c.Workspace.NoteGlob, err)
	}
	for _, d := range c.Workspace.CountDirs {
		if !contains(c.Workspace.RequiredDirs, d) {
			return fmt.Errorf("workspace.count_dirs entry %q is not a required dir", d)
		}
	}
	if c.Marker.Filename == "" || c.Marker.Filename != filepath.Base(c.Marker.Filename) {
		return fmt.Errorf("marker.filename %q must be a bare file name", c.Marker.Filename)
	}
	return nil
}

// Save writes the configuration to a file path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
