// Package config loads the bot's static configuration. Everything here is
// read once at startup; a missing or malformed file is fatal because the
// bot cannot run without its pools and character.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/KASHINO-SHINO/SYOUYA/content"
	"github.com/KASHINO-SHINO/SYOUYA/types"
	"github.com/pkg/errors"
)

// File names expected inside the config directory.
const (
	settingsFile      = "settings.json"
	characterFile     = "character.json"
	remindersFile     = "reminders.json"
	announcementsFile = "announcements.json"
)

// Config is everything loaded from the config directory.
type Config struct {
	Settings      types.Settings
	Character     types.Character
	Reminders     content.Pool
	Announcements content.Pool
}

// Load reads all four config files from dir and validates them.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		Reminders:     content.NewPool(content.ReminderFallback),
		Announcements: content.NewPool(content.AnnouncementFallback),
	}

	if err := readJSON(filepath.Join(dir, settingsFile), &cfg.Settings); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, characterFile), &cfg.Character); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, remindersFile), &cfg.Reminders); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, announcementsFile), &cfg.Announcements); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Settings.CommandPrefix == "" {
		return errors.New("settings: command_prefix must not be empty")
	}
	if c.Settings.DefaultChannelID == "" {
		return errors.New("settings: default_channel_id must not be empty")
	}
	if c.Character.Name == "" {
		return errors.New("character: name must not be empty")
	}
	for _, h := range c.Settings.Schedule.Reminders.Hours {
		if h < 0 || h > 23 {
			return errors.Errorf("settings: reminder hour %d out of range", h)
		}
	}
	if h := c.Settings.Schedule.Announcements.Hour; h != nil && (*h < 0 || *h > 23) {
		return errors.Errorf("settings: announcement hour %d out of range", *h)
	}
	return nil
}
