package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
	KeyLogLevel = "log_level"
)

// Default values
const (
	DefaultLanguage = "system"
	DefaultLogLevel = "info"
)

// Settings manages per-machine preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel stores the log level name. Unknown names fall back to the
// default.
func (s *Settings) SetLogLevel(level string) {
	switch level {
	case "debug", "info", "warn", "error":
	default:
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}
