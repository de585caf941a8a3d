package control

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/visitors-counter/internal/model"
)

// Action is what a control does when pressed
type Action func() error

// Input is one frame's sample of the pointer and keyboard
type Input struct {
	Pos  fyne.Position
	Down bool
	Keys map[fyne.KeyName]bool
}

// KeyDown reports whether key is held in this sample
func (in Input) KeyDown(key fyne.KeyName) bool {
	return in.Keys[key]
}

// Control is a rectangular hit region bound to an action
type Control struct {
	label  string
	pos    fyne.Position
	size   fyne.Size
	action Action
	keys   []fyne.KeyName

	state      model.ControlState
	suppressed bool
}

// New creates an idle control
func New(label string, pos fyne.Position, size fyne.Size, action Action) *Control {
	return &Control{
		label:  label,
		pos:    pos,
		size:   size,
		action: action,
		state:  model.ControlIdle,
	}
}

// BindKeys lets the given keys press the control as if the pointer were
// held over it
func (c *Control) BindKeys(keys ...fyne.KeyName) *Control {
	c.keys = append(c.keys, keys...)
	return c
}

// Label returns the text shown on the control
func (c *Control) Label() string {
	return c.label
}

// Bounds returns the control's position and size
func (c *Control) Bounds() (fyne.Position, fyne.Size) {
	return c.pos, c.size
}

// State returns the state computed by the last Process call
func (c *Control) State() model.ControlState {
	return c.state
}

// Contains reports whether p lies inside the control. The right and bottom
// edges are exclusive.
func (c *Control) Contains(p fyne.Position) bool {
	return p.X >= c.pos.X && p.X < c.pos.X+c.size.Width &&
		p.Y >= c.pos.Y && p.Y < c.pos.Y+c.size.Height
}

// Process advances the state machine by one frame and fires the action on
// a fresh press. It returns whether the action fired and the action's error.
func (c *Control) Process(in Input) (bool, error) {
	inside := c.Contains(in.Pos)
	down := in.Down
	if c.keyHeld(in) {
		inside, down = true, true
	}

	if !down {
		c.suppressed = false
	}

	switch {
	case !inside:
		c.state = model.ControlIdle
		return false, nil
	case !down:
		c.state = model.ControlHovered
		return false, nil
	case c.suppressed:
		c.state = model.ControlHeldSuppressed
		return false, nil
	}

	c.state = model.ControlPressed
	c.suppressed = true
	if c.action == nil {
		return true, nil
	}
	return true, c.action()
}

func (c *Control) keyHeld(in Input) bool {
	for _, k := range c.keys {
		if in.KeyDown(k) {
			return true
		}
	}
	return false
}
