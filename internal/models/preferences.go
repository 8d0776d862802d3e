package models

// Display preference bounds.
const (
	MinFontSize       = 12
	DefaultFontSize   = 16
	DefaultFontFamily = "System"
)

// Preferences holds the display preferences persisted for the device.
type Preferences struct {
	DarkMode   bool   `json:"darkMode"`
	FontSize   int    `json:"fontSize"`
	FontFamily string `json:"fontFamily"`
}

// DefaultPreferences returns the preferences used before any are saved.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:   false,
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
	}
}
