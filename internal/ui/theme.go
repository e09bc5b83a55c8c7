package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand palette
var (
	youtubeRed     = color.NRGBA{R: 0xCC, G: 0x00, B: 0x00, A: 0xFF}
	youtubeRedDark = color.NRGBA{R: 0xFF, G: 0x4E, B: 0x45, A: 0xFF}
	linkLight      = color.NRGBA{R: 0x06, G: 0x5F, B: 0xD4, A: 0xFF}
	linkDark       = color.NRGBA{R: 0x3E, G: 0xA6, B: 0xFF, A: 0xFF}
	warningAmber   = color.NRGBA{R: 0xF2, G: 0x9D, B: 0x0B, A: 0xFF}
)

// Alpha applied to the primary color for focus rings and selections
const (
	focusAlpha     = 0x66
	selectionAlpha = 0x33
)

// PlaylistTheme tints the base theme with YouTube red and sizes text for
// long monospace playlist URLs
type PlaylistTheme struct {
	base fyne.Theme
}

// NewPlaylistTheme creates a new playlist theme on top of the default theme
func NewPlaylistTheme() fyne.Theme {
	return &PlaylistTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *PlaylistTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary:
		return pick(dark, youtubeRedDark, youtubeRed)
	case theme.ColorNameHyperlink:
		return pick(dark, linkDark, linkLight)
	case theme.ColorNameWarning:
		return warningAmber
	case theme.ColorNameFocus:
		return withAlpha(pick(dark, youtubeRedDark, youtubeRed), focusAlpha)
	case theme.ColorNameSelection:
		return withAlpha(pick(dark, youtubeRedDark, youtubeRed), selectionAlpha)
	}

	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *PlaylistTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *PlaylistTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes; URL rows get a little more breathing room
func (t *PlaylistTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 2
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 8
	case theme.SizeNameInlineIcon:
		return 22
	}

	return t.base.Size(name)
}

func pick(dark bool, onDark, onLight color.NRGBA) color.NRGBA {
	if dark {
		return onDark
	}
	return onLight
}

func withAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
