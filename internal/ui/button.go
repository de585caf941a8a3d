package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/visitors-counter/internal/model"
)

// ButtonPalette maps control states to fill colors
type ButtonPalette struct {
	Idle    color.Color
	Hovered color.Color
	Pressed color.Color
}

// Fill returns the color for state
func (p ButtonPalette) Fill(state model.ControlState) color.Color {
	switch {
	case state.IsEngaged():
		return p.Pressed
	case state == model.ControlHovered:
		return p.Hovered
	default:
		return p.Idle
	}
}

// Palettes for the two counter buttons
var (
	IncrementPalette = ButtonPalette{Idle: ColorAccent, Hovered: ColorAccentDark, Pressed: ColorLightGrey}
	DecrementPalette = ButtonPalette{Idle: ColorRed, Hovered: ColorHoverRed, Pressed: ColorLightGrey}
)

// counterButton is the drawn part of a control: a rounded rectangle with a
// centered label. Hit testing lives in the control package.
type counterButton struct {
	palette ButtonPalette
	state   model.ControlState
	bg      *canvas.Rectangle
	label   *canvas.Text
}

func newCounterButton(text string, pos fyne.Position, size fyne.Size, palette ButtonPalette) *counterButton {
	bg := canvas.NewRectangle(palette.Idle)
	bg.CornerRadius = ButtonRadius
	bg.Move(pos)
	bg.Resize(size)

	label := canvas.NewText(text, ColorWhite)
	label.TextSize = ButtonTextSize
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter
	labelSize := label.MinSize()
	label.Move(fyne.NewPos(pos.X, pos.Y+(size.Height-labelSize.Height)/2))
	label.Resize(fyne.NewSize(size.Width, labelSize.Height))

	return &counterButton{palette: palette, state: model.ControlIdle, bg: bg, label: label}
}

// setState updates the fill and reports whether anything changed
func (b *counterButton) setState(state model.ControlState) bool {
	if state == b.state {
		return false
	}
	b.state = state
	b.bg.FillColor = b.palette.Fill(state)
	return true
}

func (b *counterButton) objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{b.bg, b.label}
}
