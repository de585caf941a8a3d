package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CounterTheme is a light theme using the counter palette. The window is
// always shown light so the chart image blends with the cards.
type CounterTheme struct{}

// NewCounterTheme creates the counter theme
func NewCounterTheme() fyne.Theme {
	return &CounterTheme{}
}

// Color returns theme colors
func (t *CounterTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorAccent
	case theme.ColorNameError:
		return ColorRed
	case theme.ColorNameBackground:
		return ColorBGTop
	case theme.ColorNameForeground:
		return ColorBlack
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return ColorLightGrey
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return ColorCardBorder
	}

	// Everything else follows the default light variant
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *CounterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CounterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CounterTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
