package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyWorkMessage          = "work.message"
	keyWorkSound            = "work.sound"
	keyWorkColor            = "work.color"
	keyShortBreakDuration   = "short_break.duration"
	keyShortBreakMessage    = "short_break.message"
	keyShortBreakSound      = "short_break.sound"
	keyShortBreakColor      = "short_break.color"
	keyLongBreakDuration    = "long_break.duration"
	keyLongBreakMessage     = "long_break.message"
	keyLongBreakSound       = "long_break.sound"
	keyLongBreakColor       = "long_break.color"
	keyLongBreakInterval    = "settings.long_break_interval"
	keyAutoStartWork        = "settings.auto_start_work"
	keyAutoStartBreak       = "settings.auto_start_break"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the
// YAML config file, writing one with default values if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyWorkMessage, "Focus on your task")
	v.SetDefault(keyWorkColor, "#B0DB43")
	v.SetDefault(keyWorkSound, "")
	v.SetDefault(keyShortBreakDuration, "5m")
	v.SetDefault(keyShortBreakMessage, "Take a breather")
	v.SetDefault(keyShortBreakColor, "#12EAEA")
	v.SetDefault(keyShortBreakSound, "")
	v.SetDefault(keyLongBreakDuration, "15m")
	v.SetDefault(keyLongBreakMessage, "Take a long break")
	v.SetDefault(keyLongBreakColor, "#C492B1")
	v.SetDefault(keyLongBreakSound, "")
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keyAutoStartBreak, true)
	v.SetDefault(keyAutoStartWork, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config
// struct. Durations are stored as strings in the file ("25m") and
// parsed here.
func loadViperConfig(v *viper.Viper, c *Config) error {
	durations := map[string]*time.Duration{
		keyWorkDuration:       &c.Work.Duration,
		keyShortBreakDuration: &c.ShortBreak.Duration,
		keyLongBreakDuration:  &c.LongBreak.Duration,
	}

	for key, dst := range durations {
		dur, err := ParseDuration(v.GetString(key))
		if err != nil {
			return errInvalidDurationStr.Fmt(key, v.GetString(key)).Wrap(err)
		}

		*dst = dur
	}

	c.Work.Message = v.GetString(keyWorkMessage)
	c.Work.Color = v.GetString(keyWorkColor)
	c.Work.Sound = v.GetString(keyWorkSound)
	c.ShortBreak.Message = v.GetString(keyShortBreakMessage)
	c.ShortBreak.Color = v.GetString(keyShortBreakColor)
	c.ShortBreak.Sound = v.GetString(keyShortBreakSound)
	c.LongBreak.Message = v.GetString(keyLongBreakMessage)
	c.LongBreak.Color = v.GetString(keyLongBreakColor)
	c.LongBreak.Sound = v.GetString(keyLongBreakSound)

	c.Settings.LongBreakInterval = v.GetInt(keyLongBreakInterval)
	c.Settings.AutoStartBreak = v.GetBool(keyAutoStartBreak)
	c.Settings.AutoStartWork = v.GetBool(keyAutoStartWork)
	c.Settings.Cmd = v.GetString(keySessionCmd)
	c.Settings.TwentyFourHour = v.GetBool(keyTwentyFourHour)

	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)

	return nil
}

// Save writes the config back to the config file, preserving the key
// layout produced by the defaults.
func (c *Config) Save(configPath string) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.Set(keyWorkDuration, c.Work.Duration.String())
	v.Set(keyWorkMessage, c.Work.Message)
	v.Set(keyWorkColor, c.Work.Color)
	v.Set(keyWorkSound, c.Work.Sound)
	v.Set(keyShortBreakDuration, c.ShortBreak.Duration.String())
	v.Set(keyShortBreakMessage, c.ShortBreak.Message)
	v.Set(keyShortBreakColor, c.ShortBreak.Color)
	v.Set(keyShortBreakSound, c.ShortBreak.Sound)
	v.Set(keyLongBreakDuration, c.LongBreak.Duration.String())
	v.Set(keyLongBreakMessage, c.LongBreak.Message)
	v.Set(keyLongBreakColor, c.LongBreak.Color)
	v.Set(keyLongBreakSound, c.LongBreak.Sound)
	v.Set(keyLongBreakInterval, c.Settings.LongBreakInterval)
	v.Set(keyAutoStartBreak, c.Settings.AutoStartBreak)
	v.Set(keyAutoStartWork, c.Settings.AutoStartWork)
	v.Set(keySessionCmd, c.Settings.Cmd)
	v.Set(keyTwentyFourHour, c.Settings.TwentyFourHour)
	v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
	v.Set(keyDarkTheme, c.Display.DarkTheme)

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// ParseDuration parses a duration string, treating a bare number as
// minutes.
func ParseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
