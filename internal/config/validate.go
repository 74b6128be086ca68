package config

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

var (
	// Duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	minLongBreakInterval = 1

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its
// fields.
func (c *Config) Validate() error {
	if err := c.validateSessionConfig(c.Work, "work"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.ShortBreak, "short break"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.LongBreak, "long break"); err != nil {
		return err
	}

	if c.Settings.LongBreakInterval < minLongBreakInterval {
		return errInvalidInterval.Fmt(
			minLongBreakInterval,
			c.Settings.LongBreakInterval,
		)
	}

	return nil
}

// validateSessionConfig validates the settings of a single phase.
func (c *Config) validateSessionConfig(
	sc SessionConfig,
	sessionType string,
) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			sessionType,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(sessionType)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(sessionType, sc.Color)
	}

	if sc.Sound != "" {
		if err := validateSound(sc.Sound); err != nil {
			return err
		}
	}

	return nil
}

// validateSound checks the format and existence of a sound file. Bare
// names resolve to OGG files in the sounds directory.
func validateSound(sound string) error {
	path := sound

	if filepath.Ext(path) == "" {
		path = filepath.Join(SoundsDirPath(), path+".ogg")
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExts := []string{".mp3", ".ogg", ".flac", ".wav"}

	if !slices.Contains(validExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	if _, err := os.Stat(path); err != nil {
		return errUnknownSound.Fmt(sound)
	}

	return nil
}
