package domain

// Storage keys. Per-visitor keys are prefixed with the session id.
const (
	KeyCacheTimestamp    = "rsrvd_cache_timestamp"
	KeyTheme             = "theme"
	KeyPreferredLanguage = "preferredLanguage"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
