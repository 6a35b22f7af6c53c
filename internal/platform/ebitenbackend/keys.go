package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"zzz/pkg/zzz"
)

var keyTable = map[ebiten.Key]zzz.Key{
	ebiten.KeyA: zzz.KeyA,
	ebiten.KeyB: zzz.KeyB,
	ebiten.KeyC: zzz.KeyC,
	ebiten.KeyD: zzz.KeyD,
	ebiten.KeyE: zzz.KeyE,
	ebiten.KeyF: zzz.KeyF,
	ebiten.KeyG: zzz.KeyG,
	ebiten.KeyH: zzz.KeyH,
	ebiten.KeyI: zzz.KeyI,
	ebiten.KeyJ: zzz.KeyJ,
	ebiten.KeyK: zzz.KeyK,
	ebiten.KeyL: zzz.KeyL,
	ebiten.KeyM: zzz.KeyM,
	ebiten.KeyN: zzz.KeyN,
	ebiten.KeyO: zzz.KeyO,
	ebiten.KeyP: zzz.KeyP,
	ebiten.KeyQ: zzz.KeyQ,
	ebiten.KeyR: zzz.KeyR,
	ebiten.KeyS: zzz.KeyS,
	ebiten.KeyT: zzz.KeyT,
	ebiten.KeyU: zzz.KeyU,
	ebiten.KeyV: zzz.KeyV,
	ebiten.KeyW: zzz.KeyW,
	ebiten.KeyX: zzz.KeyX,
	ebiten.KeyY: zzz.KeyY,
	ebiten.KeyZ: zzz.KeyZ,

	ebiten.KeyDigit0: zzz.Key0,
	ebiten.KeyDigit1: zzz.Key1,
	ebiten.KeyDigit2: zzz.Key2,
	ebiten.KeyDigit3: zzz.Key3,
	ebiten.KeyDigit4: zzz.Key4,
	ebiten.KeyDigit5: zzz.Key5,
	ebiten.KeyDigit6: zzz.Key6,
	ebiten.KeyDigit7: zzz.Key7,
	ebiten.KeyDigit8: zzz.Key8,
	ebiten.KeyDigit9: zzz.Key9,

	ebiten.KeySpace:        zzz.KeySpace,
	ebiten.KeyQuote:        zzz.KeyApostrophe,
	ebiten.KeyComma:        zzz.KeyComma,
	ebiten.KeyMinus:        zzz.KeyMinus,
	ebiten.KeyPeriod:       zzz.KeyPeriod,
	ebiten.KeySlash:        zzz.KeySlash,
	ebiten.KeySemicolon:    zzz.KeySemicolon,
	ebiten.KeyEqual:        zzz.KeyEqual,
	ebiten.KeyBracketLeft:  zzz.KeyLeftBracket,
	ebiten.KeyBackslash:    zzz.KeyBackslash,
	ebiten.KeyBracketRight: zzz.KeyRightBracket,
	ebiten.KeyBackquote:    zzz.KeyGraveAccent,

	ebiten.KeyIntlBackslash: zzz.KeyWorld2,

	ebiten.KeyEscape:      zzz.KeyEscape,
	ebiten.KeyEnter:       zzz.KeyEnter,
	ebiten.KeyTab:         zzz.KeyTab,
	ebiten.KeyBackspace:   zzz.KeyBackspace,
	ebiten.KeyInsert:      zzz.KeyInsert,
	ebiten.KeyDelete:      zzz.KeyDelete,
	ebiten.KeyArrowRight:  zzz.KeyRight,
	ebiten.KeyArrowLeft:   zzz.KeyLeft,
	ebiten.KeyArrowDown:   zzz.KeyDown,
	ebiten.KeyArrowUp:     zzz.KeyUp,
	ebiten.KeyPageUp:      zzz.KeyPageUp,
	ebiten.KeyPageDown:    zzz.KeyPageDown,
	ebiten.KeyHome:        zzz.KeyHome,
	ebiten.KeyEnd:         zzz.KeyEnd,
	ebiten.KeyCapsLock:    zzz.KeyCapsLock,
	ebiten.KeyScrollLock:  zzz.KeyScrollLock,
	ebiten.KeyNumLock:     zzz.KeyNumLock,
	ebiten.KeyPrintScreen: zzz.KeyPrintScreen,
	ebiten.KeyPause:       zzz.KeyPause,

	ebiten.KeyF1:  zzz.KeyF1,
	ebiten.KeyF2:  zzz.KeyF2,
	ebiten.KeyF3:  zzz.KeyF3,
	ebiten.KeyF4:  zzz.KeyF4,
	ebiten.KeyF5:  zzz.KeyF5,
	ebiten.KeyF6:  zzz.KeyF6,
	ebiten.KeyF7:  zzz.KeyF7,
	ebiten.KeyF8:  zzz.KeyF8,
	ebiten.KeyF9:  zzz.KeyF9,
	ebiten.KeyF10: zzz.KeyF10,
	ebiten.KeyF11: zzz.KeyF11,
	ebiten.KeyF12: zzz.KeyF12,
	ebiten.KeyF13: zzz.KeyF13,
	ebiten.KeyF14: zzz.KeyF14,
	ebiten.KeyF15: zzz.KeyF15,
	ebiten.KeyF16: zzz.KeyF16,
	ebiten.KeyF17: zzz.KeyF17,
	ebiten.KeyF18: zzz.KeyF18,
	ebiten.KeyF19: zzz.KeyF19,
	ebiten.KeyF20: zzz.KeyF20,
	ebiten.KeyF21: zzz.KeyF21,
	ebiten.KeyF22: zzz.KeyF22,
	ebiten.KeyF23: zzz.KeyF23,
	ebiten.KeyF24: zzz.KeyF24,

	ebiten.KeyNumpad0:        zzz.KeyKP0,
	ebiten.KeyNumpad1:        zzz.KeyKP1,
	ebiten.KeyNumpad2:        zzz.KeyKP2,
	ebiten.KeyNumpad3:        zzz.KeyKP3,
	ebiten.KeyNumpad4:        zzz.KeyKP4,
	ebiten.KeyNumpad5:        zzz.KeyKP5,
	ebiten.KeyNumpad6:        zzz.KeyKP6,
	ebiten.KeyNumpad7:        zzz.KeyKP7,
	ebiten.KeyNumpad8:        zzz.KeyKP8,
	ebiten.KeyNumpad9:        zzz.KeyKP9,
	ebiten.KeyNumpadDecimal:  zzz.KeyKPDecimal,
	ebiten.KeyNumpadDivide:   zzz.KeyKPDivide,
	ebiten.KeyNumpadMultiply: zzz.KeyKPMultiply,
	ebiten.KeyNumpadSubtract: zzz.KeyKPSubtract,
	ebiten.KeyNumpadAdd:      zzz.KeyKPAdd,
	ebiten.KeyNumpadEnter:    zzz.KeyKPEnter,
	ebiten.KeyNumpadEqual:    zzz.KeyKPEqual,

	ebiten.KeyShiftLeft:    zzz.KeyLeftShift,
	ebiten.KeyControlLeft:  zzz.KeyLeftControl,
	ebiten.KeyAltLeft:      zzz.KeyLeftAlt,
	ebiten.KeyMetaLeft:     zzz.KeyLeftSuper,
	ebiten.KeyShiftRight:   zzz.KeyRightShift,
	ebiten.KeyControlRight: zzz.KeyRightControl,
	ebiten.KeyAltRight:     zzz.KeyRightAlt,
	ebiten.KeyMetaRight:    zzz.KeyRightSuper,
	ebiten.KeyContextMenu:  zzz.KeyMenu,
}

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	zzz zzz.MouseButton
}{
	{ebiten.MouseButtonLeft, zzz.MouseButtonLeft},
	{ebiten.MouseButtonRight, zzz.MouseButtonRight},
	{ebiten.MouseButtonMiddle, zzz.MouseButtonMiddle},
	{ebiten.MouseButtonBack, zzz.MouseButton4},
	{ebiten.MouseButtonForward, zzz.MouseButton5},
}

func currentMods() zzz.Mod {
	var mods zzz.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= zzz.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= zzz.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= zzz.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= zzz.ModSuper
	}
	return mods
}
