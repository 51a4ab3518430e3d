package ui

// ThemeChangedMsg is sent to the views after the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}
