package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme trims padding and text sizes so the small window fits its controls
type CompactTheme struct{}

// NewTheme returns the theme registered under name, falling back to the Fyne default
func NewTheme(name string) fyne.Theme {
	if name == ThemeCompact {
		return &CompactTheme{}
	}
	return theme.DefaultTheme()
}

var (
	colorSuccess = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	colorError   = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	colorPrimary = color.RGBA{R: 204, G: 0, B: 0, A: 255}
)

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNamePrimary:
		// progress bar fill and the focused entry border
		return colorPrimary
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

var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:        3,
	theme.SizeNameInnerPadding:   6,
	theme.SizeNameLineSpacing:    2,
	theme.SizeNameText:           13,
	theme.SizeNameHeadingText:    16,
	theme.SizeNameSubHeadingText: 13,
	theme.SizeNameCaptionText:    10,
	theme.SizeNameInputRadius:    3,
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return theme.DefaultTheme().Size(name)
}
