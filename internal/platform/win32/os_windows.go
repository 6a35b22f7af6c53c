//go:build windows

package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"zzz/internal/platform"
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procSetWindowTextW   = user32.NewProc("SetWindowTextW")
	procAdjustWindowRect = user32.NewProc("AdjustWindowRect")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procGetMessageTime   = user32.NewProc("GetMessageTime")
	procGetKeyState      = user32.NewProc("GetKeyState")
	procMapVirtualKeyW   = user32.NewProc("MapVirtualKeyW")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procGetDC            = user32.NewProc("GetDC")
	procReleaseDC        = user32.NewProc("ReleaseDC")
	procTrackMouseEvent  = user32.NewProc("TrackMouseEvent")

	procStretchDIBits = gdi32.NewProc("StretchDIBits")

	procDragAcceptFiles = shell32.NewProc("DragAcceptFiles")
	procDragQueryFileW  = shell32.NewProc("DragQueryFileW")
	procDragFinish      = shell32.NewProc("DragFinish")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)

const (
	className = "ZZZWindowClass"

	csVRedraw = 0x0001
	csHRedraw = 0x0002
	csOwnDC   = 0x0020

	wsOverlappedWindow = 0x00CF0000
	wsThickFrame       = 0x00040000
	wsMaximizeBox      = 0x00010000
	wsExAppWindow      = 0x00040000
	cwUseDefault       = 0x80000000

	idcArrow    = 32512
	colorWindow = 5

	pmNoRemove = 0x0000
	pmRemove   = 0x0001

	swHide   = 0
	swShowNA = 8

	tmeLeave = 0x00000002

	wmGetMinMaxInfo = 0x0024

	biRGB        = 0
	dibRGBColors = 0
	srcCopy      = 0x00CC0020
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type rect struct {
	left, top, right, bottom int32
}

type point struct{ x, y int32 }

type minMaxInfo struct {
	reserved     point
	maxSize      point
	maxPosition  point
	minTrackSize point
	maxTrackSize point
}

type trackMouseEvent struct {
	size      uint32
	flags     uint32
	hwndTrack uintptr
	hoverTime uint32
}

type bitmapInfoHeader struct {
	size          uint32
	width         int32
	height        int32
	planes        uint16
	bitCount      uint16
	compression   uint32
	sizeImage     uint32
	xPelsPerMeter int32
	yPelsPerMeter int32
	clrUsed       uint32
	clrImportant  uint32
}

// The class procedure is process-wide; it forwards to the procedure of the
// window being created or pumped. Only the pumping thread touches these.
var (
	activeProc     WindowProc
	minTrackW      int32
	minTrackH      int32
	wndProcPointer = windows.NewCallback(wndProc)
)

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	if msg == wmGetMinMaxInfo && (minTrackW > 0 || minTrackH > 0) {
		mmi := (*minMaxInfo)(unsafe.Pointer(lParam))
		mmi.minTrackSize = point{minTrackW, minTrackH}
		return 0
	}
	if activeProc != nil {
		if r, ok := activeProc(Handle(hwnd), uint32(msg), wParam, lParam); ok {
			return r
		}
	}
	r, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
	return r
}

type nativeOS struct {
	instance  uintptr
	className *uint16
	bgra      []byte
}

// NewNativeOS registers the window class and returns the live OS binding.
// The caller must stay on one locked OS thread for every later call.
func NewNativeOS() (OS, error) {
	instance, _, err := procGetModuleHandleW.Call(0)
	if instance == 0 {
		return nil, fmt.Errorf("win32: GetModuleHandleW: %w", err)
	}
	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}
	cursor, _, _ := procLoadCursorW.Call(0, idcArrow)

	wc := wndClassEx{
		style:      csHRedraw | csVRedraw | csOwnDC,
		wndProc:    wndProcPointer,
		instance:   windows.Handle(instance),
		cursor:     windows.Handle(cursor),
		background: windows.Handle(colorWindow),
		className:  name,
	}
	wc.size = uint32(unsafe.Sizeof(wc))
	if atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return nil, fmt.Errorf("win32: RegisterClassExW: %w", err)
	}
	return &nativeOS{instance: instance, className: name}, nil
}

func windowStyle(cfg platform.WindowConfig) uintptr {
	style := uintptr(wsOverlappedWindow)
	if !cfg.Resizable {
		style &^= wsThickFrame | wsMaximizeBox
	}
	return style
}

func adjustedSize(style uintptr, w, h int) (int32, int32) {
	r := rect{right: int32(w), bottom: int32(h)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&r)), style, 0)
	return r.right - r.left, r.bottom - r.top
}

func (o *nativeOS) CreateWindow(cfg platform.WindowConfig, proc WindowProc) (Handle, error) {
	title, err := windows.UTF16PtrFromString(cfg.Title)
	if err != nil {
		return 0, err
	}
	style := windowStyle(cfg)
	w, h := adjustedSize(style, cfg.WidthPx, cfg.HeightPx)
	if cfg.MinWidthPx > 0 || cfg.MinHeightPx > 0 {
		minTrackW, minTrackH = adjustedSize(style, cfg.MinWidthPx, cfg.MinHeightPx)
	}

	activeProc = proc
	hwnd, _, err := procCreateWindowExW.Call(
		wsExAppWindow,
		uintptr(unsafe.Pointer(o.className)),
		uintptr(unsafe.Pointer(title)),
		style,
		cwUseDefault,
		cwUseDefault,
		uintptr(w),
		uintptr(h),
		0,
		0,
		o.instance,
		0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW: %w", err)
	}
	procDragAcceptFiles.Call(hwnd, 1)
	return Handle(hwnd), nil
}

func (o *nativeOS) ShowWindow(hwnd Handle, visible bool) {
	cmd := uintptr(swHide)
	if visible {
		cmd = swShowNA
	}
	procShowWindow.Call(uintptr(hwnd), cmd)
}

func (o *nativeOS) SetTitle(hwnd Handle, title string) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		zzz.Logger().Warn("zzz: invalid window title", "err", err)
		return
	}
	procSetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(p)))
}

func (o *nativeOS) DestroyWindow(hwnd Handle) {
	if r, _, err := procDestroyWindow.Call(uintptr(hwnd)); r == 0 {
		zzz.Logger().Warn("zzz: DestroyWindow failed", "err", err)
	}
}

func (o *nativeOS) TrackMouseLeave(hwnd Handle) {
	tme := trackMouseEvent{flags: tmeLeave, hwndTrack: uintptr(hwnd)}
	tme.size = uint32(unsafe.Sizeof(tme))
	procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme)))
}

func (o *nativeOS) PeekMessage(remove bool) (Msg, bool) {
	var msg Msg
	flags := uintptr(pmNoRemove)
	if remove {
		flags = pmRemove
	}
	r, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, flags)
	return msg, r != 0
}

func (o *nativeOS) MessageTime() uint32 {
	r, _, _ := procGetMessageTime.Call()
	return uint32(r)
}

func (o *nativeOS) TranslateMessage(msg *Msg) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

func (o *nativeOS) DispatchMessage(msg *Msg) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

func (o *nativeOS) PostQuitMessage(code int) {
	procPostQuitMessage.Call(uintptr(code))
}

func (o *nativeOS) KeyState(vk uint32) uint16 {
	r, _, _ := procGetKeyState.Call(uintptr(vk))
	return uint16(r)
}

func (o *nativeOS) MapVirtualKey(vk uint32) uint32 {
	r, _, _ := procMapVirtualKeyW.Call(uintptr(vk), MAPVK_VK_TO_VSC)
	return uint32(r)
}

func (o *nativeOS) ClientSize(hwnd Handle) (int, int) {
	var r rect
	procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	return int(r.right - r.left), int(r.bottom - r.top)
}

func (o *nativeOS) DroppedFiles(hdrop uintptr) []string {
	defer procDragFinish.Call(hdrop)
	count, _, _ := procDragQueryFileW.Call(hdrop, 0xFFFFFFFF, 0, 0)
	paths := make([]string, 0, count)
	for i := uintptr(0); i < count; i++ {
		n, _, _ := procDragQueryFileW.Call(hdrop, i, 0, 0)
		buf := make([]uint16, n+1)
		procDragQueryFileW.Call(hdrop, i, uintptr(unsafe.Pointer(&buf[0])), n+1)
		paths = append(paths, windows.UTF16ToString(buf))
	}
	return paths
}

// Present blits fb into the client area, stretching it to the current
// client size.
func (o *nativeOS) Present(hwnd Handle, fb *render.FrameBuffer) error {
	n := len(fb.Pixels)
	if cap(o.bgra) < n {
		o.bgra = make([]byte, n)
	}
	o.bgra = o.bgra[:n]
	for i := 0; i < n; i += 4 {
		o.bgra[i+0] = fb.Pixels[i+2]
		o.bgra[i+1] = fb.Pixels[i+1]
		o.bgra[i+2] = fb.Pixels[i+0]
		o.bgra[i+3] = fb.Pixels[i+3]
	}

	bmi := bitmapInfoHeader{
		width:       int32(fb.W),
		height:      -int32(fb.H), // top-down rows
		planes:      1,
		bitCount:    32,
		compression: biRGB,
	}
	bmi.size = uint32(unsafe.Sizeof(bmi))

	hdc, _, err := procGetDC.Call(uintptr(hwnd))
	if hdc == 0 {
		return fmt.Errorf("win32: GetDC: %w", err)
	}
	defer procReleaseDC.Call(uintptr(hwnd), hdc)

	cw, ch := o.ClientSize(hwnd)
	r, _, err := procStretchDIBits.Call(
		hdc,
		0, 0, uintptr(cw), uintptr(ch),
		0, 0, uintptr(fb.W), uintptr(fb.H),
		uintptr(unsafe.Pointer(&o.bgra[0])),
		uintptr(unsafe.Pointer(&bmi)),
		dibRGBColors,
		srcCopy,
	)
	if r == 0 {
		return fmt.Errorf("win32: StretchDIBits: %w", err)
	}
	return nil
}
