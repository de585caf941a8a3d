package ui

import (
	"os"
	"strings"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPresent           = "present"
	KeyFile              = "file"
	KeyOpenLog           = "open_log"
	KeyRevealChart       = "reveal_chart"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyLogLevel          = "log_level"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyCapacityReached   = "capacity_reached"
	KeyCapacityReachedAt = "capacity_reached_at"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// systemLanguage reads the two-letter language from the POSIX locale
// variables, defaulting to English
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(env)
		if len(v) >= 2 {
			return strings.ToLower(v[:2])
		}
	}
	return "en"
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Visitors Counter",
		KeyPresent:           "Visitors present",
		KeyFile:              "File",
		KeyOpenLog:           "Open visitor log",
		KeyRevealChart:       "Show chart in folder",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyLogLevel:          "Log level",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
		KeyErrorOpeningFile:  "Error opening file",
		KeyCapacityReached:   "Capacity reached",
		KeyCapacityReachedAt: "%d visitors present, capacity is %d",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:          "Besucherzähler",
		KeyPresent:           "Anwesend",
		KeyFile:              "Datei",
		KeyOpenLog:           "Besucherprotokoll öffnen",
		KeyRevealChart:       "Diagramm im Ordner zeigen",
		KeySettings:          "Einstellungen",
		KeyLanguage:          "Sprache",
		KeyLogLevel:          "Protokollstufe",
		KeySave:              "Speichern",
		KeyCancel:            "Abbrechen",
		KeySettingsSaved:     "Einstellungen gespeichert",
		KeyErrorOpeningFile:  "Fehler beim Öffnen der Datei",
		KeyCapacityReached:   "Kapazität erreicht",
		KeyCapacityReachedAt: "%d Besucher anwesend, Kapazität ist %d",
	}
}
