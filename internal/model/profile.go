package model

// Profile holds the user-editable identity shown on the dashboard.
// Avatar is an inline image data URI, or empty when unset.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Supported settings values.
const (
	LanguageBengali = "bn"
	LanguageEnglish = "en"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings holds the display preferences persisted with the ledger.
type Settings struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// ValidLanguage reports whether s is a supported language code.
func ValidLanguage(s string) bool {
	return s == LanguageBengali || s == LanguageEnglish
}

// ValidTheme reports whether s is a supported theme name.
func ValidTheme(s string) bool {
	return s == ThemeLight || s == ThemeDark
}
