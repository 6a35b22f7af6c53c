package demo

import (
	"fmt"
	"strings"

	"zzz/pkg/zzz"
)

const DefaultLogLines = 200

// EventLog keeps the most recent lines, oldest first.
type EventLog struct {
	lines []string
	max   int
}

func NewEventLog(max int) *EventLog {
	if max <= 0 {
		max = DefaultLogLines
	}
	return &EventLog{lines: make([]string, 0, max), max: max}
}

func (l *EventLog) Add(line string) {
	if len(l.lines) == l.max {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.max-1]
	}
	l.lines = append(l.lines, line)
}

func (l *EventLog) Lines() []string { return l.lines }

func (l *EventLog) Len() int { return len(l.lines) }

func (l *EventLog) String() string {
	return strings.Join(l.lines, "\n")
}

// Describe renders an event as one log line.
func Describe(ev zzz.Event) string {
	switch ev.Type {
	case zzz.EventWindowMoved:
		return fmt.Sprintf("%v %d,%d", ev.Type, ev.Window.X, ev.Window.Y)
	case zzz.EventWindowResized, zzz.EventFramebufferResized:
		return fmt.Sprintf("%v %dx%d", ev.Type, ev.Size.Width, ev.Size.Height)
	case zzz.EventKeyPressed, zzz.EventKeyRepeated, zzz.EventKeyReleased:
		k := ev.Keyboard
		return fmt.Sprintf("%v %v sc=%#x mods=%v", ev.Type, k.Key, k.Scancode, k.Mods)
	case zzz.EventButtonPressed, zzz.EventButtonReleased:
		return fmt.Sprintf("%v %v mods=%v", ev.Type, ev.Mouse.Button, ev.Mouse.Mods)
	case zzz.EventCursorMoved:
		return fmt.Sprintf("%v %g,%g", ev.Type, ev.Cursor.X, ev.Cursor.Y)
	case zzz.EventScrolled:
		return fmt.Sprintf("%v %g,%g", ev.Type, ev.Scroll.X, ev.Scroll.Y)
	case zzz.EventCodepointInput:
		return fmt.Sprintf("%v %q", ev.Type, ev.Codepoint)
	case zzz.EventFileDropped:
		return fmt.Sprintf("%v %d: %s", ev.Type, ev.File.Count(), strings.Join(ev.File.Paths, ", "))
	case zzz.EventScaleChanged:
		return fmt.Sprintf("%v %gx%g", ev.Type, ev.Scale.X, ev.Scale.Y)
	}
	return ev.Type.String()
}
