// Package demo is the triangle scene: it drains the event queue every frame,
// keeps a log of what arrived and draws a colour-interpolated triangle next
// to it.
package demo

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"

	"zzz/internal/app"
	"zzz/internal/render"
	"zzz/internal/ui"
	"zzz/pkg/zzz"
)

var (
	red   = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	green = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	blue  = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
)

// Host is the part of app.App a frame needs.
type Host interface {
	NextEvent(ev *zzz.Event) bool
	Size() (int, int)
	Present(fb *render.FrameBuffer) error
}

type Scene struct {
	Theme ui.Theme
	Log   *EventLog
	// Copy puts text on the system clipboard.
	Copy func(text string) error

	fb        *render.FrameBuffer
	scale     float32
	status    string
	cursorX   float32
	cursorY   float32
	keyEvents int
}

func NewScene() *Scene {
	return &Scene{
		Theme:  ui.DefaultTheme(),
		Log:    NewEventLog(DefaultLogLines),
		Copy:   clipboard.WriteAll,
		scale:  1,
		status: "Esc quits, Ctrl+C copies the event log",
	}
}

// Frame drains every queued event, then draws and presents one frame. It
// returns app.ErrQuit once the window is closed or Escape is pressed.
func (s *Scene) Frame(h Host) error {
	var ev zzz.Event
	for h.NextEvent(&ev) {
		if err := s.Handle(ev); err != nil {
			return err
		}
	}

	w, hh := h.Size()
	if s.fb == nil {
		s.fb = render.NewFrameBuffer(w, hh)
	} else if w > 0 && hh > 0 {
		s.fb.Resize(w, hh)
	}
	s.Draw(s.fb)
	return h.Present(s.fb)
}

func (s *Scene) Handle(ev zzz.Event) error {
	zzz.Logger().Debug("zzz: event", "type", ev.Type)

	switch ev.Type {
	case zzz.EventWindowClosed:
		s.Log.Add(Describe(ev))
		return app.ErrQuit
	case zzz.EventCursorMoved:
		s.cursorX, s.cursorY = ev.Cursor.X, ev.Cursor.Y
		return nil
	case zzz.EventWindowResized:
		if s.fb != nil {
			s.fb.Resize(ev.Size.Width, ev.Size.Height)
		}
	case zzz.EventScaleChanged:
		if ev.Scale.X > 0 {
			s.scale = ev.Scale.X
		}
	case zzz.EventKeyPressed:
		s.keyEvents++
		zzz.Logger().Info("zzz: key pressed", "key", ev.Keyboard.Key, "mods", ev.Keyboard.Mods)
		switch {
		case ev.Keyboard.Key == zzz.KeyEscape:
			s.Log.Add(Describe(ev))
			return app.ErrQuit
		case ev.Keyboard.Key == zzz.KeyC && ev.Keyboard.Mods.Has(zzz.ModControl):
			s.copyLog()
		}
	}
	s.Log.Add(Describe(ev))
	return nil
}

func (s *Scene) copyLog() {
	if s.Copy == nil {
		return
	}
	if err := s.Copy(s.Log.String()); err != nil {
		zzz.Logger().Warn("zzz: copy event log", "error", err)
		s.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	s.status = fmt.Sprintf("copied %d lines", s.Log.Len())
}

func (s *Scene) Draw(fb *render.FrameBuffer) {
	status := fmt.Sprintf("%s   cursor %.0f,%.0f   keys %d", s.status, s.cursorX, s.cursorY, s.keyEvents)
	layout := ui.DrawShell(fb, s.Log.Lines(), status, s.Theme, s.scale)
	a, b, c := Triangle(layout.Scene)
	fb.FillTriangle(a, b, c)
}

// Triangle maps the classic red/green/blue triangle, given in normalized
// device coordinates, into r.
func Triangle(r ui.Rect) (render.Vertex, render.Vertex, render.Vertex) {
	ndc := func(x, y float32) (float32, float32) {
		return float32(r.X) + (x+1)/2*float32(r.W), float32(r.Y) + (1-y)/2*float32(r.H)
	}
	ax, ay := ndc(0, 0.5)
	bx, by := ndc(-0.5, -0.5)
	cx, cy := ndc(0.5, -0.5)
	return render.Vertex{X: ax, Y: ay, C: red},
		render.Vertex{X: bx, Y: by, C: green},
		render.Vertex{X: cx, Y: cy, C: blue}
}
