package win32

import (
	"slices"
	"unicode/utf16"

	"zzz/pkg/zzz"
)

// Adapter turns window messages for registered windows into events. It runs
// on the thread that pumps messages and is re-entered only through
// DispatchMessage.
type Adapter struct {
	os  OS
	reg *Registry
}

func NewAdapter(os OS, reg *Registry) *Adapter {
	return &Adapter{os: os, reg: reg}
}

// WindowProc is installed as the procedure of every window the backend
// creates. Messages for unknown windows, such as those sent while the window
// is still being created, are left to the default procedure.
func (a *Adapter) WindowProc(hwnd Handle, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	s := a.reg.surface(hwnd)
	if s == nil {
		return 0, false
	}

	switch msg {
	case WM_DESTROY:
		s.destroyed = true
		a.reportClose(s)
		a.os.PostQuitMessage(0)
		return 0, true
	case WM_SIZE:
		a.sizeChanged(s, wParam)
	case WM_MOVE:
		x, y := lparamPoint(lParam)
		if ev := a.push(s, zzz.EventWindowMoved); ev != nil {
			ev.Window.X = x
			ev.Window.Y = y
		}
	case WM_SETFOCUS:
		a.push(s, zzz.EventWindowGainFocus)
	case WM_KILLFOCUS:
		a.push(s, zzz.EventWindowLostFocus)
	case WM_KEYDOWN, WM_SYSKEYDOWN, WM_KEYUP, WM_SYSKEYUP:
		a.key(s, uint32(wParam), lParam)
	case WM_CHAR, WM_SYSCHAR:
		a.char(s, uint16(wParam))
	case WM_MOUSEMOVE:
		if !s.cursorInside {
			s.cursorInside = true
			a.os.TrackMouseLeave(hwnd)
			a.push(s, zzz.EventCursorEntered)
		}
		x, y := lparamPoint(lParam)
		if ev := a.push(s, zzz.EventCursorMoved); ev != nil {
			ev.Cursor = zzz.Vec2{X: float32(x), Y: float32(y)}
		}
	case WM_MOUSELEAVE:
		s.cursorInside = false
		a.push(s, zzz.EventCursorLeft)
	case WM_LBUTTONDOWN, WM_RBUTTONDOWN, WM_MBUTTONDOWN, WM_XBUTTONDOWN,
		WM_LBUTTONUP, WM_RBUTTONUP, WM_MBUTTONUP, WM_XBUTTONUP:
		a.button(s, msg, wParam)
	case WM_MOUSEWHEEL:
		if ev := a.push(s, zzz.EventScrolled); ev != nil {
			ev.Scroll.Y = float32(int16(hiword(wParam))) / WHEEL_DELTA
		}
	case WM_MOUSEHWHEEL:
		if ev := a.push(s, zzz.EventScrolled); ev != nil {
			ev.Scroll.X = -float32(int16(hiword(wParam))) / WHEEL_DELTA
		}
	case WM_DROPFILES:
		paths := a.os.DroppedFiles(wParam)
		if ev := a.push(s, zzz.EventFileDropped); ev != nil {
			ev.File.Paths = slices.Clone(paths)
		}
	case WM_DPICHANGED:
		if ev := a.push(s, zzz.EventScaleChanged); ev != nil {
			ev.Scale.X = float32(loword(wParam)) / USER_DEFAULT_DPI
			ev.Scale.Y = float32(hiword(wParam)) / USER_DEFAULT_DPI
		}
	}
	return 0, false
}

// Quit converts a WM_QUIT seen while pumping into a close event, unless the
// window already reported one from WM_DESTROY.
func (a *Adapter) Quit(hwnd Handle) {
	if s := a.reg.surface(hwnd); s != nil {
		a.reportClose(s)
	}
}

func (a *Adapter) reportClose(s *surface) {
	if s.closeReported {
		return
	}
	// Left unset when the queue is full so WM_QUIT gets another chance.
	if a.push(s, zzz.EventWindowClosed) != nil {
		s.closeReported = true
	}
}

func (a *Adapter) push(s *surface, t zzz.EventType) *zzz.Event {
	ev := s.queue.Push(t)
	if ev == nil {
		zzz.Logger().Debug("zzz: event dropped",
			"type", t,
			"window", uintptr(s.handle),
			"capacity", s.queue.Cap())
	}
	return ev
}

func (a *Adapter) pushKey(s *surface, t zzz.EventType, key zzz.Key, scancode uint32, mods zzz.Mod) {
	if ev := a.push(s, t); ev != nil {
		ev.Keyboard = zzz.KeyPayload{Key: key, Scancode: int(scancode), Mods: mods}
	}
}

func (a *Adapter) key(s *surface, vk uint32, lParam uintptr) {
	flags := hiword(lParam)
	action := zzz.EventKeyPressed
	switch {
	case flags&KF_UP != 0:
		action = zzz.EventKeyReleased
	case flags&KF_REPEAT != 0:
		action = zzz.EventKeyRepeated
	}
	mods := CurrentMods(a.os)

	scancode := uint32(flags & (KF_EXTENDED | 0xff))
	if scancode == 0 {
		scancode = a.os.MapVirtualKey(vk)
	}
	scancode = fixScancode(scancode)
	key := ScancodeToKey(scancode)

	switch vk {
	case VK_CONTROL:
		if flags&KF_EXTENDED != 0 {
			key = zzz.KeyRightControl
		} else {
			if a.altGrPrecursor() {
				return
			}
			key = zzz.KeyLeftControl
		}
	case VK_PROCESSKEY:
		// Filtered by the IME.
		return
	}

	if key == zzz.KeyUnknown {
		zzz.Logger().Debug("zzz: unmapped scancode", "scancode", scancode, "vk", vk)
	}

	switch {
	case action == zzz.EventKeyReleased && vk == VK_SHIFT:
		// With both Shift keys held, releasing one reports nothing, so
		// release both on any Shift up.
		a.pushKey(s, action, zzz.KeyLeftShift, scancode, mods)
		a.pushKey(s, action, zzz.KeyRightShift, scancode, mods)
	case vk == VK_SNAPSHOT:
		// Print Screen only ever reports its release.
		a.pushKey(s, zzz.EventKeyPressed, key, scancode, mods)
		a.pushKey(s, zzz.EventKeyReleased, key, scancode, mods)
	default:
		a.pushKey(s, action, key, scancode, mods)
	}
}

// altGrPrecursor reports whether the Left Control message being dispatched
// is the synthetic half of Alt-Gr: Windows sends it immediately before a
// Right Alt message with the same timestamp.
func (a *Adapter) altGrPrecursor() bool {
	time := a.os.MessageTime()
	next, ok := a.os.PeekMessage(false)
	if !ok || !isKeyMessage(next.Message) {
		return false
	}
	return next.WParam == VK_MENU &&
		hiword(next.LParam)&KF_EXTENDED != 0 &&
		next.Time == time
}

func (a *Adapter) char(s *surface, unit uint16) {
	var r rune
	switch {
	case utf16.IsSurrogate(rune(unit)) && unit < 0xDC00:
		s.highSurrogate = unit
		return
	case utf16.IsSurrogate(rune(unit)):
		if s.highSurrogate == 0 {
			return
		}
		r = utf16.DecodeRune(rune(s.highSurrogate), rune(unit))
	default:
		r = rune(unit)
	}
	s.highSurrogate = 0
	if r < 32 || (r > 126 && r < 160) {
		return
	}
	if ev := a.push(s, zzz.EventCodepointInput); ev != nil {
		ev.Codepoint = r
	}
}

func (a *Adapter) button(s *surface, msg uint32, wParam uintptr) {
	var button zzz.MouseButton
	switch msg {
	case WM_LBUTTONDOWN, WM_LBUTTONUP:
		button = zzz.MouseButtonLeft
	case WM_RBUTTONDOWN, WM_RBUTTONUP:
		button = zzz.MouseButtonRight
	case WM_MBUTTONDOWN, WM_MBUTTONUP:
		button = zzz.MouseButtonMiddle
	default:
		button = zzz.MouseButton5
		if hiword(wParam) == XBUTTON1 {
			button = zzz.MouseButton4
		}
	}

	t := zzz.EventButtonReleased
	switch msg {
	case WM_LBUTTONDOWN, WM_RBUTTONDOWN, WM_MBUTTONDOWN, WM_XBUTTONDOWN:
		t = zzz.EventButtonPressed
	}
	if ev := a.push(s, t); ev != nil {
		ev.Mouse = zzz.MousePayload{Button: button, Mods: CurrentMods(a.os)}
	}
}

func (a *Adapter) sizeChanged(s *surface, mode uintptr) {
	prev := s.sizeMode
	s.sizeMode = mode
	if prev != mode {
		switch {
		case mode == SIZE_MINIMIZED:
			a.push(s, zzz.EventWindowIconified)
		case prev == SIZE_MINIMIZED:
			a.push(s, zzz.EventWindowUniconified)
		}
		switch {
		case mode == SIZE_MAXIMIZED:
			a.push(s, zzz.EventWindowMaximized)
		case prev == SIZE_MAXIMIZED:
			a.push(s, zzz.EventWindowUnmaximized)
		}
	}

	w, h := a.os.ClientSize(s.handle)
	if ev := a.push(s, zzz.EventWindowResized); ev != nil {
		ev.Size = zzz.SizePayload{Width: w, Height: h}
	}
}
