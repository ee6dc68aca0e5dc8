package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/character-browser/internal/model"
)

// Palette
var (
	colorAlive   = color.RGBA{R: 85, G: 204, B: 68, A: 255}
	colorDead    = color.RGBA{R: 214, G: 61, B: 46, A: 255}
	colorUnknown = color.RGBA{R: 158, G: 158, B: 158, A: 255}
	colorPortal  = color.RGBA{R: 151, G: 206, B: 76, A: 255}
)

// CompactTheme is the default theme with tighter padding and a portal-green accent
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorAlive
	case theme.ColorNameError:
		return colorDead
	case theme.ColorNamePrimary:
		return colorPortal
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 32, G: 35, B: 41, A: 255}
		}
		return color.RGBA{R: 245, G: 245, B: 245, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 245, G: 245, B: 245, A: 255}
		}
		return color.RGBA{R: 32, G: 35, B: 41, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 22 // title
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// StatusColor returns the dot color used for a character status
func StatusColor(status model.Status) color.Color {
	switch status {
	case model.StatusAlive:
		return colorAlive
	case model.StatusDead:
		return colorDead
	default:
		return colorUnknown
	}
}
