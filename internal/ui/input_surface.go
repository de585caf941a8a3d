package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/visitors-counter/internal/control"
)

// offscreen is reported as the pointer position when no pointer is over the
// window
var offscreen = fyne.NewPos(-1, -1)

// InputSurface is a transparent widget covering the window. It records
// pointer, touch and key state as events arrive; the frame loop samples it
// once per frame with Poll.
//
// A press that starts and ends between two polls is latched so the next
// poll still reports it as down.
type InputSurface struct {
	widget.BaseWidget

	mu       sync.Mutex
	pos      fyne.Position
	down     bool
	latched  bool
	pressPos fyne.Position
	keys     map[fyne.KeyName]bool
	keyLatch map[fyne.KeyName]bool
	quit     bool
	quitKeys map[fyne.KeyName]bool
}

// NewInputSurface creates an input surface with Escape bound to quit
func NewInputSurface() *InputSurface {
	s := &InputSurface{
		pos:      offscreen,
		keys:     make(map[fyne.KeyName]bool),
		keyLatch: make(map[fyne.KeyName]bool),
		quitKeys: map[fyne.KeyName]bool{fyne.KeyEscape: true},
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer renders a transparent rectangle so the whole area takes
// pointer events
func (s *InputSurface) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	return widget.NewSimpleRenderer(bg)
}

// AttachKeys routes key events of c to the surface. Canvases without raw key
// events (mobile) are left alone.
func (s *InputSurface) AttachKeys(c fyne.Canvas) {
	dc, ok := c.(desktop.Canvas)
	if !ok {
		return
	}
	dc.SetOnKeyDown(s.KeyDown)
	dc.SetOnKeyUp(s.KeyUp)
}

// RequestQuit makes the next Poll report quit
func (s *InputSurface) RequestQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quit = true
}

// Poll returns the current input sample and whether quit was requested
func (s *InputSurface) Poll() (control.Input, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := control.Input{Pos: s.pos, Down: s.down}
	if s.latched && !s.down {
		in.Pos, in.Down = s.pressPos, true
	}
	s.latched = false

	in.Keys = make(map[fyne.KeyName]bool, len(s.keys)+len(s.keyLatch))
	for k := range s.keys {
		in.Keys[k] = true
	}
	for k := range s.keyLatch {
		in.Keys[k] = true
		delete(s.keyLatch, k)
	}

	return in, s.quit
}

// MouseIn is called when a desktop pointer enters the surface
func (s *InputSurface) MouseIn(ev *desktop.MouseEvent) {
	s.move(ev.Position)
}

// MouseMoved is called when a desktop pointer moves over the surface
func (s *InputSurface) MouseMoved(ev *desktop.MouseEvent) {
	s.move(ev.Position)
}

// MouseOut is called when a desktop pointer leaves the surface. A button
// released outside the window is never reported, so leaving counts as a
// release.
func (s *InputSurface) MouseOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = offscreen
	s.down = false
}

// MouseDown is called when a mouse button is pressed
func (s *InputSurface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.press(ev.Position)
}

// MouseUp is called when a mouse button is released
func (s *InputSurface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = ev.Position
	s.down = false
}

// TouchDown handles touch down events
func (s *InputSurface) TouchDown(ev *mobile.TouchEvent) {
	s.press(ev.Position)
}

// TouchUp handles touch up events. A lifted finger does not hover, so the
// pointer moves off screen.
func (s *InputSurface) TouchUp(*mobile.TouchEvent) {
	s.release()
}

// TouchCancel handles touch cancel events
func (s *InputSurface) TouchCancel(*mobile.TouchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = offscreen
	s.down = false
	s.latched = false
}

// KeyDown records a held key
func (s *InputSurface) KeyDown(ev *fyne.KeyEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quitKeys[ev.Name] {
		s.quit = true
		return
	}
	s.keys[ev.Name] = true
	s.keyLatch[ev.Name] = true
}

// KeyUp records a released key
func (s *InputSurface) KeyUp(ev *fyne.KeyEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, ev.Name)
}

func (s *InputSurface) move(p fyne.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = p
}

func (s *InputSurface) press(p fyne.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = p
	s.pressPos = p
	s.down = true
	s.latched = true
}

func (s *InputSurface) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = offscreen
	s.down = false
}

var (
	_ desktop.Hoverable = (*InputSurface)(nil)
	_ desktop.Mouseable = (*InputSurface)(nil)
	_ mobile.Touchable  = (*InputSurface)(nil)
)
