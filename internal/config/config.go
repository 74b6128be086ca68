// Package config handles the loading, validation, and persistence of
// tomato's settings from the config file and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/zhye/tomato/internal/engine"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          SessionConfig
		ShortBreak    SessionConfig
		LongBreak     SessionConfig
		Settings      SettingsConfig
		Notifications NotificationConfig
		Display       DisplayConfig
	}

	// SessionConfig holds the settings for a single phase.
	SessionConfig struct {
		Duration time.Duration
		Message  string
		Color    string
		Sound    string
	}

	// SettingsConfig holds behavioural settings.
	SettingsConfig struct {
		LongBreakInterval int
		AutoStartBreak    bool
		AutoStartWork     bool
		Cmd               string
		TwentyFourHour    bool
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

// SoundOff disables a sound when passed as a flag value.
const SoundOff = "off"

var (
	configDir      = "tomato"
	configFileName = "config.yml"
	statusFileName = "status.json"
	logFileName    = "tomato.log"
	configFilePath string
	statusFilePath string
	logFilePath    string
	soundsDirPath  string
)

func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// SoundsDirPath is the directory searched for sound files referenced
// by bare name.
func SoundsDirPath() string {
	return soundsDirPath
}

// InitializePaths resolves the XDG locations for the config file,
// status file, and log file. TOMATO_ENV separates test environments
// from the default one.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("TOMATO_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("tomato_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	statusFilePath, err = xdg.DataFile(
		filepath.Join(configDir, statusFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir := filepath.Dir(statusFilePath)

	soundsDirPath = filepath.Join(dataDir, "sounds")
	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config by applying the provided options in order
// and validating the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// EngineSettings derives the session engine settings from the config.
func (c *Config) EngineSettings() engine.Settings {
	return engine.Settings{
		Work:              c.Work.Duration,
		ShortBreak:        c.ShortBreak.Duration,
		LongBreak:         c.LongBreak.Duration,
		LongBreakInterval: c.Settings.LongBreakInterval,
		AutoStartBreak:    c.Settings.AutoStartBreak,
		AutoStartWork:     c.Settings.AutoStartWork,
	}
}

// Message returns the configured message for a phase.
func (c *Config) Message(p engine.Phase) string {
	switch p {
	case engine.Work:
		return c.Work.Message
	case engine.ShortBreak:
		return c.ShortBreak.Message
	case engine.LongBreak:
		return c.LongBreak.Message
	}

	return ""
}

// Sound returns the configured completion sound for a phase.
func (c *Config) Sound(p engine.Phase) string {
	switch p {
	case engine.Work:
		return c.Work.Sound
	case engine.ShortBreak:
		return c.ShortBreak.Sound
	case engine.LongBreak:
		return c.LongBreak.Sound
	}

	return ""
}

// Color returns the configured hex color for a phase.
func (c *Config) Color(p engine.Phase) string {
	switch p {
	case engine.Work:
		return c.Work.Color
	case engine.ShortBreak:
		return c.ShortBreak.Color
	case engine.LongBreak:
		return c.LongBreak.Color
	}

	return ""
}
