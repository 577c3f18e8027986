package gohook

import (
	"github.com/aretw0/vibinremote/pkg/capture"
	"github.com/aretw0/vibinremote/pkg/keys"
)

// Event kinds as delivered in hook.Event.Kind (libuiohook event types).
// gohook names them KeyDown, KeyHold and KeyUp.
const (
	kindKeyTyped    uint8 = 3
	kindKeyPressed  uint8 = 4
	kindKeyReleased uint8 = 5
)

// codes maps libuiohook virtual key codes (hook.Event.Keycode) to keys.
var codes = map[uint16]keys.Key{
	0x0001: keys.Escape,

	0x003B: keys.F1,
	0x003C: keys.F2,
	0x003D: keys.F3,
	0x003E: keys.F4,
	0x003F: keys.F5,
	0x0040: keys.F6,
	0x0041: keys.F7,
	0x0042: keys.F8,
	0x0043: keys.F9,
	0x0044: keys.F10,
	0x0057: keys.F11,
	0x0058: keys.F12,

	0x0029: keys.BackQuote,
	0x0002: keys.Num1,
	0x0003: keys.Num2,
	0x0004: keys.Num3,
	0x0005: keys.Num4,
	0x0006: keys.Num5,
	0x0007: keys.Num6,
	0x0008: keys.Num7,
	0x0009: keys.Num8,
	0x000A: keys.Num9,
	0x000B: keys.Num0,
	0x000C: keys.Minus,
	0x000D: keys.Equal,
	0x000E: keys.Backspace,

	0x000F: keys.Tab,
	0x003A: keys.CapsLock,

	0x001E: keys.KeyA,
	0x0030: keys.KeyB,
	0x002E: keys.KeyC,
	0x0020: keys.KeyD,
	0x0012: keys.KeyE,
	0x0021: keys.KeyF,
	0x0022: keys.KeyG,
	0x0023: keys.KeyH,
	0x0017: keys.KeyI,
	0x0024: keys.KeyJ,
	0x0025: keys.KeyK,
	0x0026: keys.KeyL,
	0x0032: keys.KeyM,
	0x0031: keys.KeyN,
	0x0018: keys.KeyO,
	0x0019: keys.KeyP,
	0x0010: keys.KeyQ,
	0x0013: keys.KeyR,
	0x001F: keys.KeyS,
	0x0014: keys.KeyT,
	0x0016: keys.KeyU,
	0x002F: keys.KeyV,
	0x0011: keys.KeyW,
	0x002D: keys.KeyX,
	0x0015: keys.KeyY,
	0x002C: keys.KeyZ,

	0x001A: keys.LeftBracket,
	0x001B: keys.RightBracket,
	0x002B: keys.BackSlash,
	0x0056: keys.IntlBackslash,
	0x0027: keys.SemiColon,
	0x0028: keys.Quote,
	0x001C: keys.Return,
	0x0033: keys.Comma,
	0x0034: keys.Dot,
	0x0035: keys.Slash,
	0x0039: keys.Space,

	0x0E37: keys.PrintScreen,
	0x0046: keys.ScrollLock,
	0x0E45: keys.Pause,

	0x0E52: keys.Insert,
	0x0E53: keys.Delete,
	0x0E47: keys.Home,
	0x0E4F: keys.End,
	0x0E49: keys.PageUp,
	0x0E51: keys.PageDown,

	0xE048: keys.UpArrow,
	0xE04B: keys.LeftArrow,
	0xE04D: keys.RightArrow,
	0xE050: keys.DownArrow,

	0x0045: keys.NumLock,
	0x0E35: keys.KpDivide,
	0x0037: keys.KpMultiply,
	0x004A: keys.KpMinus,
	0x004E: keys.KpPlus,
	0x0E1C: keys.KpReturn,
	0x0053: keys.KpDelete,
	0x004F: keys.Kp1,
	0x0050: keys.Kp2,
	0x0051: keys.Kp3,
	0x004B: keys.Kp4,
	0x004C: keys.Kp5,
	0x004D: keys.Kp6,
	0x0047: keys.Kp7,
	0x0048: keys.Kp8,
	0x0049: keys.Kp9,
	0x0052: keys.Kp0,

	0x002A: keys.ShiftLeft,
	0x0036: keys.ShiftRight,
	0x001D: keys.ControlLeft,
	0x0E1D: keys.ControlRight,
	0x0038: keys.Alt,
	0x0E38: keys.AltGr,
	0x0E5B: keys.MetaLeft,
	0x0E5C: keys.MetaRight,

	0xE022: keys.MediaPlayPause,
	0xE024: keys.MediaStop,
	0xE010: keys.MediaPrevTrack,
	0xE019: keys.MediaNextTrack,
	0xE020: keys.VolumeMute,
	0xE030: keys.VolumeUp,
	0xE02E: keys.VolumeDown,
}

// translate converts a raw hook event into a capture event.
func translate(kind uint8, keycode uint16) capture.Event {
	var ev capture.Event

	switch kind {
	case kindKeyPressed, kindKeyTyped:
		ev.Kind = capture.KindPress
	case kindKeyReleased:
		ev.Kind = capture.KindRelease
	default:
		return ev
	}

	ev.Key = codes[keycode]
	return ev
}
