package demo

import (
	"errors"
	"strings"
	"testing"

	"zzz/internal/app"
	"zzz/internal/render"
	"zzz/internal/ui"
	"zzz/pkg/zzz"
)

type fakeHost struct {
	events    []zzz.Event
	w, h      int
	presented int
	last      *render.FrameBuffer
}

func (h *fakeHost) NextEvent(ev *zzz.Event) bool {
	if len(h.events) == 0 {
		return false
	}
	*ev = h.events[0]
	h.events = h.events[1:]
	return true
}

func (h *fakeHost) Size() (int, int) { return h.w, h.h }

func (h *fakeHost) Present(fb *render.FrameBuffer) error {
	h.presented++
	h.last = fb
	return nil
}

func keyEvent(k zzz.Key, mods zzz.Mod) zzz.Event {
	return zzz.Event{Type: zzz.EventKeyPressed, Keyboard: zzz.KeyPayload{Key: k, Mods: mods}}
}

func TestFrameDrawsAndPresents(t *testing.T) {
	s := NewScene()
	h := &fakeHost{w: 640, h: 480}
	if err := s.Frame(h); err != nil {
		t.Fatal(err)
	}
	if h.presented != 1 || h.last.W != 640 || h.last.H != 480 {
		t.Fatalf("unexpected present: %d frames, %dx%d", h.presented, h.last.W, h.last.H)
	}

	layout := ui.ComputeLayout(640, 480, s.Theme, 1)
	a, b, c := Triangle(layout.Scene)
	cx, cy := int((a.X+b.X+c.X)/3), int((a.Y+b.Y+c.Y)/3)
	if got := h.last.At(cx, cy); got == s.Theme.Background {
		t.Fatal("triangle not drawn at its centroid")
	}
	if got := h.last.At(1, 1); got != s.Theme.Background {
		t.Fatalf("expected clear colour in corner, got %v", got)
	}
}

func TestFrameQuitsOnClose(t *testing.T) {
	s := NewScene()
	h := &fakeHost{w: 100, h: 100, events: []zzz.Event{
		keyEvent(zzz.KeyA, 0),
		{Type: zzz.EventWindowClosed},
		keyEvent(zzz.KeyB, 0),
	}}
	if err := s.Frame(h); !errors.Is(err, app.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if len(h.events) != 1 {
		t.Fatalf("expected events after close to stay queued, got %d", len(h.events))
	}
	if h.presented != 0 {
		t.Fatal("presented after quit")
	}
}

func TestEscapeQuits(t *testing.T) {
	s := NewScene()
	if err := s.Handle(keyEvent(zzz.KeyEscape, 0)); !errors.Is(err, app.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestResizeFollowsEvents(t *testing.T) {
	s := NewScene()
	h := &fakeHost{w: 200, h: 100}
	if err := s.Frame(h); err != nil {
		t.Fatal(err)
	}
	h.w, h.h = 300, 150
	h.events = []zzz.Event{{Type: zzz.EventWindowResized, Size: zzz.SizePayload{Width: 300, Height: 150}}}
	if err := s.Frame(h); err != nil {
		t.Fatal(err)
	}
	if h.last.W != 300 || h.last.H != 150 {
		t.Fatalf("expected 300x150, got %dx%d", h.last.W, h.last.H)
	}
}

func TestCtrlCCopiesLog(t *testing.T) {
	s := NewScene()
	var copied string
	s.Copy = func(text string) error {
		copied = text
		return nil
	}
	s.Handle(zzz.Event{Type: zzz.EventWindowGainFocus})
	s.Handle(keyEvent(zzz.KeyC, 0))
	if copied != "" {
		t.Fatal("plain C copied the log")
	}
	s.Handle(keyEvent(zzz.KeyC, zzz.ModControl))
	if !strings.Contains(copied, "WindowGainFocus") {
		t.Fatalf("expected log in clipboard, got %q", copied)
	}
	if !strings.HasPrefix(s.status, "copied 2 lines") {
		t.Fatalf("unexpected status %q", s.status)
	}

	s.Copy = func(string) error { return errors.New("no clipboard") }
	s.Handle(keyEvent(zzz.KeyC, zzz.ModControl))
	if !strings.Contains(s.status, "no clipboard") {
		t.Fatalf("expected failure status, got %q", s.status)
	}
}

func TestCursorMovesAreNotLogged(t *testing.T) {
	s := NewScene()
	s.Handle(zzz.Event{Type: zzz.EventCursorMoved, Cursor: zzz.Vec2{X: 3, Y: 4}})
	if s.Log.Len() != 0 {
		t.Fatalf("expected no log lines, got %v", s.Log.Lines())
	}
	if s.cursorX != 3 || s.cursorY != 4 {
		t.Fatalf("cursor not tracked: %v,%v", s.cursorX, s.cursorY)
	}
}
