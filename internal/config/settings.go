package config

import (
	"strings"

	"gopkg.in/ini.v1"

	"xfb/internal/logger"
)

// Settings are the user preferences read at startup. They are never written
// back during bootstrap.
type Settings struct {
	Language   string
	FullScreen bool
	DarkMode   bool
}

func DefaultSettings() Settings {
	return Settings{Language: "en"}
}

// LoadSettings parses the ini configuration file. Missing or malformed keys
// fall back to their defaults, and an unreadable file degrades to an
// all-defaults record. Never fatal.
func LoadSettings(path string, log logger.Logger) Settings {
	s := DefaultSettings()

	file, err := ini.Load(path)
	if err != nil {
		log.Warning("SettingsStore", "configuration unreadable, using defaults", map[string]interface{}{
			"path":   path,
			"reason": err.Error(),
		})
		return s
	}

	// Keys are accepted from the root section or any named section.
	if k := lookupKey(file, "Language"); k != nil {
		if v := strings.TrimSpace(k.String()); v != "" {
			s.Language = v
		}
	}
	if k := lookupKey(file, "FullScreen"); k != nil {
		s.FullScreen = k.MustBool(s.FullScreen)
	}
	if k := lookupKey(file, "DarkMode"); k != nil {
		s.DarkMode = k.MustBool(s.DarkMode)
	}

	log.Debug("SettingsStore", "settings loaded", map[string]interface{}{
		"language":    s.Language,
		"full_screen": s.FullScreen,
		"dark_mode":   s.DarkMode,
	})
	return s
}

func lookupKey(file *ini.File, name string) *ini.Key {
	for _, section := range file.Sections() {
		if section.HasKey(name) {
			return section.Key(name)
		}
	}
	return nil
}
