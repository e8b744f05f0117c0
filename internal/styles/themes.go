package styles

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects currentTheme
var themeMu sync.RWMutex

// ColorPalette holds all theme colors
type ColorPalette struct {
	Primary string
	Accent  string

	Success string
	Warning string
	Error   string
	Info    string

	TextPrimary   string
	TextSecondary string
	TextMuted     string
	TextSubtle    string

	BgPrimary   string
	BgSecondary string
	BgTertiary  string

	BorderNormal string
	BorderActive string

	ToastSuccessText string
	ToastErrorText   string
	TextOnPrimary    string // focused buttons and rows drawn on Primary

	// Glamour standard style for the markdown preview ("dark" or "light")
	MarkdownTheme string
}

// Theme is a named palette.
type Theme struct {
	Name   string
	Colors ColorPalette
}

var themes = map[string]Theme{
	"default": {
		Name: "default",
		Colors: ColorPalette{
			Primary:          "#7C3AED",
			Accent:           "#F59E0B",
			Success:          "#10B981",
			Warning:          "#F59E0B",
			Error:            "#EF4444",
			Info:             "#3B82F6",
			TextPrimary:      "#F9FAFB",
			TextSecondary:    "#9CA3AF",
			TextMuted:        "#6B7280",
			TextSubtle:       "#4B5563",
			BgPrimary:        "#111827",
			BgSecondary:      "#1F2937",
			BgTertiary:       "#374151",
			BorderNormal:     "#374151",
			BorderActive:     "#7C3AED",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
			TextOnPrimary:    "#F9FAFB",
			MarkdownTheme:    "dark",
		},
	},
	"light": {
		Name: "light",
		Colors: ColorPalette{
			Primary:          "#6D28D9",
			Accent:           "#B45309",
			Success:          "#047857",
			Warning:          "#B45309",
			Error:            "#B91C1C",
			Info:             "#1D4ED8",
			TextPrimary:      "#111827",
			TextSecondary:    "#374151",
			TextMuted:        "#6B7280",
			TextSubtle:       "#9CA3AF",
			BgPrimary:        "#FFFFFF",
			BgSecondary:      "#F3F4F6",
			BgTertiary:       "#E5E7EB",
			BorderNormal:     "#D1D5DB",
			BorderActive:     "#6D28D9",
			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",
			TextOnPrimary:    "#FFFFFF",
			MarkdownTheme:    "light",
		},
	},
}

var currentTheme = "default"

// GetTheme returns the named theme, or the default theme if unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// IsValidTheme reports whether name is a built-in theme.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// ListThemes returns the built-in theme names, sorted.
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentTheme returns the name of the applied theme.
func CurrentTheme() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ApplyTheme applies a theme by name, updating all style variables
func ApplyTheme(name string) {
	theme := GetTheme(name)
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

// ApplyCustomTheme applies a theme that is not in the built-in list, such as
// a built-in palette with user colors layered on top.
func ApplyCustomTheme(theme Theme) {
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

// ApplyThemeColors updates the color variables from theme and rebuilds styles.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	Info = lipgloss.Color(c.Info)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)
	TextOnPrimary = lipgloss.Color(c.TextOnPrimary)

	CurrentMarkdownTheme = c.MarkdownTheme

	rebuildStyles()
}
