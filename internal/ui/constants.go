package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Window
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 800
)

// Cards
var (
	CountCardPos  = fyne.NewPos(80, 60)
	CountCardSize = fyne.NewSize(1040, 250)
	ChartCardPos  = fyne.NewPos(80, 330)
	ChartCardSize = fyne.NewSize(1040, 430)
)

// Content inside the cards
var (
	CountPos      = fyne.NewPos(120, 120)
	PresentPos    = fyne.NewPos(120, 90)
	ClockPos      = fyne.NewPos(940, 80)
	AlertPos      = fyne.NewPos(120, 250)
	ChartViewPos  = fyne.NewPos(120, 360)
	ChartViewSize = fyne.NewSize(960, 360)
)

// Buttons
var (
	PlusButtonPos   = fyne.NewPos(520, 210)
	MinusButtonPos  = fyne.NewPos(700, 210)
	ButtonSize      = fyne.NewSize(160, 70)
	ButtonRadius    = float32(24)
	CardRadius      = float32(18)
	CardBorderWidth = float32(1)
)

// Text sizes
const (
	CountTextSize   float32 = 96
	PresentTextSize float32 = 20
	ClockTextSize   float32 = 32
	ButtonTextSize  float32 = 30
)

// Labels
const (
	LabelIncrement = "+1"
	LabelDecrement = "-1"
)

// Clock readout
const (
	ClockLayout = "15:04:05"
)

// Palette
var (
	ColorAccent     = color.NRGBA{R: 0x2f, G: 0x7b, B: 0xff, A: 0xff}
	ColorAccentDark = color.NRGBA{R: 0x1f, G: 0x5f, B: 0xd1, A: 0xff}
	ColorRed        = color.NRGBA{R: 0xf9, G: 0x5d, B: 0x6a, A: 0xff}
	ColorHoverRed   = color.NRGBA{R: 0xdf, G: 0x41, B: 0x50, A: 0xff}
	ColorLightGrey  = color.NRGBA{R: 0xa3, G: 0xa9, B: 0xb5, A: 0xff}
	ColorBlack      = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	ColorDarkGrey   = color.NRGBA{R: 0x3b, G: 0x44, B: 0x52, A: 0xff}
	ColorWhite      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBGTop      = color.NRGBA{R: 0xf6, G: 0xf7, B: 0xfb, A: 0xff}
	ColorBGBottom   = color.NRGBA{R: 0xe9, G: 0xee, B: 0xf6, A: 0xff}
	ColorCard       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorCardBorder = color.NRGBA{R: 0xd9, G: 0xe0, B: 0xea, A: 0xff}
)
