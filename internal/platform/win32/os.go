package win32

import (
	"errors"

	"zzz/internal/platform"
	"zzz/internal/render"
)

var (
	ErrUnsupported       = errors.New("win32: native backend requires windows")
	ErrNilQueue          = errors.New("win32: event queue is nil")
	ErrAlreadyRegistered = errors.New("win32: window already registered")
)

// WindowProc handles one window message. When handled is false the caller
// forwards the message to the default window procedure.
type WindowProc func(hwnd Handle, msg uint32, wParam, lParam uintptr) (result uintptr, handled bool)

// MessageSource is the thread message queue. PeekMessage never blocks; with
// remove set to false it leaves the message in place, which the adapter only
// does to recognise the Alt-Gr sequence.
type MessageSource interface {
	PeekMessage(remove bool) (Msg, bool)
	// MessageTime is the timestamp of the message currently being dispatched.
	MessageTime() uint32
	TranslateMessage(msg *Msg)
	DispatchMessage(msg *Msg)
	PostQuitMessage(code int)
}

type GeometryQuery interface {
	ClientSize(hwnd Handle) (width, height int)
}

// DropQuery reads the paths of a WM_DROPFILES drop handle and releases it.
type DropQuery interface {
	DroppedFiles(hdrop uintptr) []string
}

type WindowHost interface {
	CreateWindow(cfg platform.WindowConfig, proc WindowProc) (Handle, error)
	ShowWindow(hwnd Handle, visible bool)
	SetTitle(hwnd Handle, title string)
	DestroyWindow(hwnd Handle)
	// TrackMouseLeave asks for a WM_MOUSELEAVE once the cursor leaves hwnd.
	TrackMouseLeave(hwnd Handle)
	Present(hwnd Handle, fb *render.FrameBuffer) error
}

// OS is everything the backend needs from the operating system.
type OS interface {
	MessageSource
	KeyStateQuery
	GeometryQuery
	DropQuery
	WindowHost
}
