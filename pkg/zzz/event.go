package zzz

import "strconv"

// EventType tags which payload of an Event is meaningful. The numeric values
// are part of the contract with applications and never change.
type EventType int

const (
	// EventUnknown is the zero tag. It never describes a real event and is
	// only returned by Queue.Next when the queue is empty.
	EventUnknown EventType = iota
	EventWindowMoved
	EventWindowResized
	EventWindowClosed
	EventWindowRefresh
	EventWindowGainFocus
	EventWindowLostFocus
	EventWindowIconified
	EventWindowUniconified
	EventFramebufferResized
	EventButtonPressed
	EventButtonReleased
	EventCursorMoved
	EventCursorEntered
	EventCursorLeft
	EventScrolled
	EventKeyPressed
	EventKeyRepeated
	EventKeyReleased
	EventCodepointInput
	EventMonitorConnected
	EventMonitorDisconnected
	EventFileDropped
	EventJoystickConnected
	EventJoystickDisconnected
	EventWindowMaximized
	EventWindowUnmaximized
	EventScaleChanged
)

var eventTypeNames = [...]string{
	EventUnknown:              "Unknown",
	EventWindowMoved:          "WindowMoved",
	EventWindowResized:        "WindowResized",
	EventWindowClosed:         "WindowClosed",
	EventWindowRefresh:        "WindowRefresh",
	EventWindowGainFocus:      "WindowGainFocus",
	EventWindowLostFocus:      "WindowLostFocus",
	EventWindowIconified:      "WindowIconified",
	EventWindowUniconified:    "WindowUniconified",
	EventFramebufferResized:   "FramebufferResized",
	EventButtonPressed:        "ButtonPressed",
	EventButtonReleased:       "ButtonReleased",
	EventCursorMoved:          "CursorMoved",
	EventCursorEntered:        "CursorEntered",
	EventCursorLeft:           "CursorLeft",
	EventScrolled:             "Scrolled",
	EventKeyPressed:           "KeyPressed",
	EventKeyRepeated:          "KeyRepeated",
	EventKeyReleased:          "KeyReleased",
	EventCodepointInput:       "CodepointInput",
	EventMonitorConnected:     "MonitorConnected",
	EventMonitorDisconnected:  "MonitorDisconnected",
	EventFileDropped:          "FileDropped",
	EventJoystickConnected:    "JoystickConnected",
	EventJoystickDisconnected: "JoystickDisconnected",
	EventWindowMaximized:      "WindowMaximized",
	EventWindowUnmaximized:    "WindowUnmaximized",
	EventScaleChanged:         "ScaleChanged",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// IsKey reports whether t carries a Keyboard payload.
func (t EventType) IsKey() bool {
	return t == EventKeyPressed || t == EventKeyRepeated || t == EventKeyReleased
}

type SizePayload struct {
	Width  int
	Height int
}

type WindowPayload struct {
	X      int
	Y      int
	Width  int
	Height int
}

type KeyPayload struct {
	Key      Key
	Scancode int
	Mods     Mod
}

type MousePayload struct {
	Button MouseButton
	Mods   Mod
}

type Vec2 struct {
	X float32
	Y float32
}

// FilePayload holds dropped paths. The slice is owned by the event: backends
// copy the native strings before pushing.
type FilePayload struct {
	Paths []string
}

// Count returns the number of dropped paths.
func (f FilePayload) Count() int { return len(f.Paths) }

// Event is a tagged union. Only the payload selected by Type is meaningful,
// every other payload stays zero.
type Event struct {
	Type      EventType
	Size      SizePayload
	Window    WindowPayload
	Keyboard  KeyPayload
	Mouse     MousePayload
	Cursor    Vec2
	Scroll    Vec2
	File      FilePayload
	Codepoint rune
	Scale     Vec2
}
