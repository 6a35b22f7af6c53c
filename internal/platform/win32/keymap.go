package win32

import "zzz/pkg/zzz"

// scancodeKeys maps Win32 scancodes (low byte plus 0x100 for the extended
// flag) to the stable key vocabulary.
var scancodeKeys = map[uint32]zzz.Key{
	0x00B: zzz.Key0,
	0x002: zzz.Key1,
	0x003: zzz.Key2,
	0x004: zzz.Key3,
	0x005: zzz.Key4,
	0x006: zzz.Key5,
	0x007: zzz.Key6,
	0x008: zzz.Key7,
	0x009: zzz.Key8,
	0x00A: zzz.Key9,
	0x01E: zzz.KeyA,
	0x030: zzz.KeyB,
	0x02E: zzz.KeyC,
	0x020: zzz.KeyD,
	0x012: zzz.KeyE,
	0x021: zzz.KeyF,
	0x022: zzz.KeyG,
	0x023: zzz.KeyH,
	0x017: zzz.KeyI,
	0x024: zzz.KeyJ,
	0x025: zzz.KeyK,
	0x026: zzz.KeyL,
	0x032: zzz.KeyM,
	0x031: zzz.KeyN,
	0x018: zzz.KeyO,
	0x019: zzz.KeyP,
	0x010: zzz.KeyQ,
	0x013: zzz.KeyR,
	0x01F: zzz.KeyS,
	0x014: zzz.KeyT,
	0x016: zzz.KeyU,
	0x02F: zzz.KeyV,
	0x011: zzz.KeyW,
	0x02D: zzz.KeyX,
	0x015: zzz.KeyY,
	0x02C: zzz.KeyZ,
	0x028: zzz.KeyApostrophe,
	0x02B: zzz.KeyBackslash,
	0x033: zzz.KeyComma,
	0x00D: zzz.KeyEqual,
	0x029: zzz.KeyGraveAccent,
	0x01A: zzz.KeyLeftBracket,
	0x00C: zzz.KeyMinus,
	0x034: zzz.KeyPeriod,
	0x01B: zzz.KeyRightBracket,
	0x027: zzz.KeySemicolon,
	0x035: zzz.KeySlash,
	0x056: zzz.KeyWorld2,
	0x00E: zzz.KeyBackspace,
	0x153: zzz.KeyDelete,
	0x14F: zzz.KeyEnd,
	0x01C: zzz.KeyEnter,
	0x001: zzz.KeyEscape,
	0x147: zzz.KeyHome,
	0x152: zzz.KeyInsert,
	0x15D: zzz.KeyMenu,
	0x151: zzz.KeyPageDown,
	0x149: zzz.KeyPageUp,
	0x045: zzz.KeyPause,
	0x039: zzz.KeySpace,
	0x00F: zzz.KeyTab,
	0x03A: zzz.KeyCapsLock,
	0x145: zzz.KeyNumLock,
	0x046: zzz.KeyScrollLock,
	0x03B: zzz.KeyF1,
	0x03C: zzz.KeyF2,
	0x03D: zzz.KeyF3,
	0x03E: zzz.KeyF4,
	0x03F: zzz.KeyF5,
	0x040: zzz.KeyF6,
	0x041: zzz.KeyF7,
	0x042: zzz.KeyF8,
	0x043: zzz.KeyF9,
	0x044: zzz.KeyF10,
	0x057: zzz.KeyF11,
	0x058: zzz.KeyF12,
	0x064: zzz.KeyF13,
	0x065: zzz.KeyF14,
	0x066: zzz.KeyF15,
	0x067: zzz.KeyF16,
	0x068: zzz.KeyF17,
	0x069: zzz.KeyF18,
	0x06A: zzz.KeyF19,
	0x06B: zzz.KeyF20,
	0x06C: zzz.KeyF21,
	0x06D: zzz.KeyF22,
	0x06E: zzz.KeyF23,
	0x076: zzz.KeyF24,
	0x038: zzz.KeyLeftAlt,
	0x01D: zzz.KeyLeftControl,
	0x02A: zzz.KeyLeftShift,
	0x15B: zzz.KeyLeftSuper,
	0x137: zzz.KeyPrintScreen,
	0x138: zzz.KeyRightAlt,
	0x11D: zzz.KeyRightControl,
	0x036: zzz.KeyRightShift,
	0x15C: zzz.KeyRightSuper,
	0x150: zzz.KeyDown,
	0x14B: zzz.KeyLeft,
	0x14D: zzz.KeyRight,
	0x148: zzz.KeyUp,
	0x052: zzz.KeyKP0,
	0x04F: zzz.KeyKP1,
	0x050: zzz.KeyKP2,
	0x051: zzz.KeyKP3,
	0x04B: zzz.KeyKP4,
	0x04C: zzz.KeyKP5,
	0x04D: zzz.KeyKP6,
	0x047: zzz.KeyKP7,
	0x048: zzz.KeyKP8,
	0x049: zzz.KeyKP9,
	0x04E: zzz.KeyKPAdd,
	0x053: zzz.KeyKPDecimal,
	0x135: zzz.KeyKPDivide,
	0x11C: zzz.KeyKPEnter,
	0x059: zzz.KeyKPEqual,
	0x037: zzz.KeyKPMultiply,
	0x04A: zzz.KeyKPSubtract,
}

var keyScancodes = func() map[zzz.Key]uint32 {
	m := make(map[zzz.Key]uint32, len(scancodeKeys))
	for sc, k := range scancodeKeys {
		m[k] = sc
	}
	return m
}()

// scancodeFixups rewrites raw scancodes that Windows reports for one key
// while meaning another. Keyed on the uncorrected value.
var scancodeFixups = map[uint32]uint32{
	0x054: 0x137, // Alt+PrintScreen
	0x146: 0x045, // Ctrl+Pause
	0x136: 0x036, // right Shift with the extended bit set by CJK IMEs
}

// ScancodeToKey translates a Win32 scancode. Codes outside the table map to
// zzz.KeyUnknown.
func ScancodeToKey(scancode uint32) zzz.Key {
	if k, ok := scancodeKeys[scancode]; ok {
		return k
	}
	return zzz.KeyUnknown
}

// KeyToScancode returns the scancode that produces k.
func KeyToScancode(k zzz.Key) (uint32, bool) {
	sc, ok := keyScancodes[k]
	return sc, ok
}

func fixScancode(scancode uint32) uint32 {
	if fixed, ok := scancodeFixups[scancode]; ok {
		return fixed
	}
	return scancode
}

// KeyStateQuery reports live keyboard state as GetKeyState does: the high
// bit is set while the key is held and the low bit while it is toggled on.
type KeyStateQuery interface {
	KeyState(vk uint32) uint16
	MapVirtualKey(vk uint32) uint32
}

const (
	keyHeld    = 0x8000
	keyToggled = 0x0001
)

// CurrentMods samples the modifier state.
func CurrentMods(ks KeyStateQuery) zzz.Mod {
	var mods zzz.Mod
	if ks.KeyState(VK_SHIFT)&keyHeld != 0 {
		mods |= zzz.ModShift
	}
	if ks.KeyState(VK_CONTROL)&keyHeld != 0 {
		mods |= zzz.ModControl
	}
	if ks.KeyState(VK_MENU)&keyHeld != 0 {
		mods |= zzz.ModAlt
	}
	if (ks.KeyState(VK_LWIN)|ks.KeyState(VK_RWIN))&keyHeld != 0 {
		mods |= zzz.ModSuper
	}
	if ks.KeyState(VK_CAPITAL)&keyToggled != 0 {
		mods |= zzz.ModCapsLock
	}
	if ks.KeyState(VK_NUMLOCK)&keyToggled != 0 {
		mods |= zzz.ModNumLock
	}
	return mods
}
