// Package polled translates per-tick input state into events, for backends
// that expose what is held rather than a stream of native messages.
package polled

import (
	"slices"

	"zzz/pkg/zzz"
)

// KeyState is one key held during a tick. Ticks counts how long it has been
// held, starting at 1 on the tick it went down.
type KeyState struct {
	Key      zzz.Key
	Scancode int
	Ticks    int
}

// Snapshot is the input and window state sampled for one tick.
type Snapshot struct {
	X, Y          int
	Width, Height int
	Scale         float32
	Focused       bool
	Maximized     bool
	Minimized     bool
	Closing       bool

	CursorX, CursorY float32
	WheelX, WheelY   float32
	Mods             zzz.Mod

	Held            []KeyState
	Released        []KeyState
	ButtonsPressed  []zzz.MouseButton
	ButtonsReleased []zzz.MouseButton
	Chars           []rune
	Dropped         []string
}

const (
	DefaultRepeatDelay    = 30
	DefaultRepeatInterval = 3
)

// Tracker diffs consecutive snapshots. The zero value uses the default
// repeat timing.
type Tracker struct {
	RepeatDelay    int
	RepeatInterval int

	prev    Snapshot
	started bool
	closed  bool
}

// Translate pushes the events that separate snap from the previous snapshot.
// The first snapshot only establishes the baseline for window geometry,
// focus and cursor position.
func (t *Tracker) Translate(q *zzz.Queue, snap Snapshot) {
	if t.started {
		t.window(q, snap)
	}

	for _, k := range snap.Held {
		switch {
		case k.Ticks == 1:
			pushKey(q, zzz.EventKeyPressed, k, snap.Mods)
		case t.repeats(k.Ticks):
			pushKey(q, zzz.EventKeyRepeated, k, snap.Mods)
		}
	}
	for _, k := range snap.Released {
		pushKey(q, zzz.EventKeyReleased, k, snap.Mods)
	}
	for _, r := range snap.Chars {
		if ev := q.Push(zzz.EventCodepointInput); ev != nil {
			ev.Codepoint = r
		}
	}

	for _, b := range snap.ButtonsPressed {
		if ev := q.Push(zzz.EventButtonPressed); ev != nil {
			ev.Mouse = zzz.MousePayload{Button: b, Mods: snap.Mods}
		}
	}
	for _, b := range snap.ButtonsReleased {
		if ev := q.Push(zzz.EventButtonReleased); ev != nil {
			ev.Mouse = zzz.MousePayload{Button: b, Mods: snap.Mods}
		}
	}
	if t.started && (snap.CursorX != t.prev.CursorX || snap.CursorY != t.prev.CursorY) {
		if ev := q.Push(zzz.EventCursorMoved); ev != nil {
			ev.Cursor = zzz.Vec2{X: snap.CursorX, Y: snap.CursorY}
		}
	}
	if snap.WheelX != 0 || snap.WheelY != 0 {
		if ev := q.Push(zzz.EventScrolled); ev != nil {
			ev.Scroll = zzz.Vec2{X: snap.WheelX, Y: snap.WheelY}
		}
	}
	if len(snap.Dropped) > 0 {
		if ev := q.Push(zzz.EventFileDropped); ev != nil {
			ev.File.Paths = slices.Clone(snap.Dropped)
		}
	}

	if snap.Closing && !t.closed {
		if q.Push(zzz.EventWindowClosed) != nil {
			t.closed = true
		}
	}

	t.prev = snap
	t.started = true
}

func (t *Tracker) repeats(ticks int) bool {
	delay, interval := t.RepeatDelay, t.RepeatInterval
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	if interval <= 0 {
		interval = DefaultRepeatInterval
	}
	return ticks > delay && (ticks-delay)%interval == 0
}

func (t *Tracker) window(q *zzz.Queue, snap Snapshot) {
	prev := t.prev
	if snap.X != prev.X || snap.Y != prev.Y {
		if ev := q.Push(zzz.EventWindowMoved); ev != nil {
			ev.Window.X = snap.X
			ev.Window.Y = snap.Y
		}
	}
	if snap.Width != prev.Width || snap.Height != prev.Height {
		if ev := q.Push(zzz.EventWindowResized); ev != nil {
			ev.Size = zzz.SizePayload{Width: snap.Width, Height: snap.Height}
		}
	}
	if snap.Scale != prev.Scale && snap.Scale > 0 {
		if ev := q.Push(zzz.EventScaleChanged); ev != nil {
			ev.Scale = zzz.Vec2{X: snap.Scale, Y: snap.Scale}
		}
	}
	pushToggle(q, prev.Focused, snap.Focused, zzz.EventWindowGainFocus, zzz.EventWindowLostFocus)
	pushToggle(q, prev.Minimized, snap.Minimized, zzz.EventWindowIconified, zzz.EventWindowUniconified)
	pushToggle(q, prev.Maximized, snap.Maximized, zzz.EventWindowMaximized, zzz.EventWindowUnmaximized)
}

func pushToggle(q *zzz.Queue, was, is bool, on, off zzz.EventType) {
	switch {
	case is && !was:
		q.Push(on)
	case was && !is:
		q.Push(off)
	}
}

func pushKey(q *zzz.Queue, t zzz.EventType, k KeyState, mods zzz.Mod) {
	ev := q.Push(t)
	if ev == nil {
		zzz.Logger().Debug("zzz: event dropped", "type", t, "capacity", q.Cap())
		return
	}
	ev.Keyboard = zzz.KeyPayload{Key: k.Key, Scancode: k.Scancode, Mods: mods}
}
