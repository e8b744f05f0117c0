// Package theme turns the theme settings in the config into applied styles.
package theme

import (
	"log/slog"
	"strings"

	"github.com/marcus/catatan/internal/config"
	"github.com/marcus/catatan/internal/styles"
)

// Minimum contrast of the accent against the background, and of text drawn
// on the accent.
const (
	minAccentContrast = 3.0
	minTextContrast   = 4.5
)

// ResolvedTheme represents a fully-determined theme configuration.
type ResolvedTheme struct {
	BaseName string
	Accent   string // #rrggbb, or "" for the base theme's own colors
}

// ResolveTheme determines the effective theme from the UI config.
// Unknown names fall back to "default"; an accent that is not #RRGGBB is
// ignored.
func ResolveTheme(cfg *config.Config) ResolvedTheme {
	r := ResolvedTheme{BaseName: cfg.UI.Theme}
	if !styles.IsValidTheme(r.BaseName) {
		r.BaseName = "default"
	}
	if a := strings.TrimSpace(cfg.UI.Accent); a != "" {
		if IsHex(a) {
			r.Accent = strings.ToLower(a)
		} else {
			slog.Warn("theme: ignoring accent, want #RRGGBB", "accent", a)
		}
	}
	return r
}

// Palette returns the base palette with the accent layered on top.
func Palette(r ResolvedTheme) styles.ColorPalette {
	c := styles.GetTheme(r.BaseName).Colors
	if r.Accent == "" {
		return c
	}

	accent := EnsureContrast(r.Accent, c.BgPrimary, minAccentContrast)
	c.Primary = accent
	c.BorderActive = accent
	c.TextOnPrimary = EnsureContrast(c.TextOnPrimary, accent, minTextContrast)

	// Selection background is a faint tint of the accent
	c.BgTertiary = Blend(c.BgTertiary, accent, 0.25)
	return c
}

// ApplyResolved applies a resolved theme to the styles system.
func ApplyResolved(r ResolvedTheme) {
	if r.Accent == "" {
		styles.ApplyTheme(r.BaseName)
		return
	}
	styles.ApplyCustomTheme(styles.Theme{Name: r.BaseName, Colors: Palette(r)})
}
