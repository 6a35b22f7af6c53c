package win32

// Handle is a native window handle (HWND).
type Handle uintptr

// Msg mirrors the Win32 MSG structure.
type Msg struct {
	Hwnd    Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// Window messages.
const (
	WM_DESTROY       = 0x0002
	WM_MOVE          = 0x0003
	WM_SIZE          = 0x0005
	WM_SETFOCUS      = 0x0007
	WM_KILLFOCUS     = 0x0008
	WM_CLOSE         = 0x0010
	WM_QUIT          = 0x0012
	WM_KEYDOWN       = 0x0100
	WM_KEYUP         = 0x0101
	WM_CHAR          = 0x0102
	WM_SYSKEYDOWN    = 0x0104
	WM_SYSKEYUP      = 0x0105
	WM_SYSCHAR       = 0x0106
	WM_MOUSEMOVE     = 0x0200
	WM_LBUTTONDOWN   = 0x0201
	WM_LBUTTONUP     = 0x0202
	WM_RBUTTONDOWN   = 0x0204
	WM_RBUTTONUP     = 0x0205
	WM_MBUTTONDOWN   = 0x0207
	WM_MBUTTONUP     = 0x0208
	WM_MOUSEWHEEL    = 0x020A
	WM_XBUTTONDOWN   = 0x020B
	WM_XBUTTONUP     = 0x020C
	WM_MOUSEHWHEEL   = 0x020E
	WM_DROPFILES     = 0x0233
	WM_MOUSELEAVE    = 0x02A3
	WM_DPICHANGED    = 0x02E0
	WHEEL_DELTA      = 120
	USER_DEFAULT_DPI = 96
)

// WM_SIZE request types.
const (
	SIZE_RESTORED  = 0
	SIZE_MINIMIZED = 1
	SIZE_MAXIMIZED = 2
)

// Keystroke flags in the high word of lParam.
const (
	KF_EXTENDED = 0x0100
	KF_REPEAT   = 0x4000
	KF_UP       = 0x8000
)

// Virtual key codes the adapter inspects.
const (
	VK_SHIFT      = 0x10
	VK_CONTROL    = 0x11
	VK_MENU       = 0x12
	VK_CAPITAL    = 0x14
	VK_SNAPSHOT   = 0x2C
	VK_LWIN       = 0x5B
	VK_RWIN       = 0x5C
	VK_NUMLOCK    = 0x90
	VK_PROCESSKEY = 0xE5
)

const (
	XBUTTON1 = 0x0001
	XBUTTON2 = 0x0002
)

const MAPVK_VK_TO_VSC = 0

func loword(v uintptr) uint16 { return uint16(v & 0xFFFF) }
func hiword(v uintptr) uint16 { return uint16((v >> 16) & 0xFFFF) }

// lparamPoint decodes signed client coordinates packed in lParam.
func lparamPoint(lParam uintptr) (int, int) {
	return int(int16(loword(lParam))), int(int16(hiword(lParam)))
}

func isKeyMessage(msg uint32) bool {
	switch msg {
	case WM_KEYDOWN, WM_SYSKEYDOWN, WM_KEYUP, WM_SYSKEYUP:
		return true
	}
	return false
}
