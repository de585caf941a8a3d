package model

// ControlState represents the debounce state of an on-screen control
type ControlState string

const (
	// ControlIdle means the pointer is outside the control
	ControlIdle ControlState = "Idle"

	// ControlHovered means the pointer is inside with the button up
	ControlHovered ControlState = "Hovered"

	// ControlPressed is the single frame on which the bound action fired
	ControlPressed ControlState = "Pressed"

	// ControlHeldSuppressed means the button is still held after firing
	ControlHeldSuppressed ControlState = "HeldSuppressed"
)

// String returns the string representation of ControlState
func (cs ControlState) String() string {
	return string(cs)
}

// IsEngaged returns true while the control is being pressed or held
func (cs ControlState) IsEngaged() bool {
	return cs == ControlPressed || cs == ControlHeldSuppressed
}

// Indicator tells the UI how to color the current count
type Indicator string

const (
	IndicatorNeutral Indicator = "neutral"
	IndicatorAlert   Indicator = "alert"
)

// String returns the string representation of Indicator
func (i Indicator) String() string {
	return string(i)
}

// IndicatorFor returns IndicatorAlert when count has reached capacity
func IndicatorFor(count, capacity int) Indicator {
	if count >= capacity {
		return IndicatorAlert
	}
	return IndicatorNeutral
}
