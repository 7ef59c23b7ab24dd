package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// goldenAnvilTheme is the application palette: deep charcoal/indigo base
// with a gold accent and cool gray-lavender muted text.
type goldenAnvilTheme struct{}

var _ fyne.Theme = (*goldenAnvilTheme)(nil)

func NewGoldenAnvilTheme() fyne.Theme {
	return &goldenAnvilTheme{}
}

var (
	colorBackground = color.NRGBA{R: 0x0b, G: 0x0d, B: 0x12, A: 0xff}
	colorPanel      = color.NRGBA{R: 0x10, G: 0x14, B: 0x21, A: 0xff}
	colorPanelAlt   = color.NRGBA{R: 0x13, G: 0x1a, B: 0x2a, A: 0xff}
	colorBorder     = color.NRGBA{R: 0x23, G: 0x2a, B: 0x3d, A: 0xff}
	colorText       = color.NRGBA{R: 0xf4, G: 0xf6, B: 0xff, A: 0xff}
	colorMuted      = color.NRGBA{R: 0xb7, G: 0xb9, B: 0xd3, A: 0xff}
	colorAccent     = color.NRGBA{R: 0xd4, G: 0xa0, B: 0x17, A: 0xff}
	colorAccentDim  = color.NRGBA{R: 0xc8, G: 0x96, B: 0x12, A: 0xff}
)

func (t *goldenAnvilTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorBackground
	case theme.ColorNameInputBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return colorPanel
	case theme.ColorNameHeaderBackground:
		return colorPanelAlt
	case theme.ColorNameForeground:
		return colorText
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return colorMuted
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorAccent
	case theme.ColorNameHover:
		return colorAccentDim
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return colorBorder
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *goldenAnvilTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *goldenAnvilTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *goldenAnvilTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
