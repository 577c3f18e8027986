package keys

import (
	"slices"
	"strings"
)

// Key identifies one physical or logical keyboard key.
// The zero value is Unknown and never matches a configured key.
type Key int

const (
	Unknown Key = iota

	// Modifiers and editing keys
	Alt
	AltGr
	Backspace
	CapsLock
	ControlLeft
	ControlRight
	Delete
	End
	Escape
	Home
	Insert
	MetaLeft
	MetaRight
	PageDown
	PageUp
	Return
	ShiftLeft
	ShiftRight
	Space
	Tab
	Function

	// Arrows
	UpArrow
	DownArrow
	LeftArrow
	RightArrow

	// System
	PrintScreen
	ScrollLock
	Pause
	NumLock

	// Function row
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	// Number row
	BackQuote
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Num0
	Minus
	Equal

	// Letters and punctuation
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	LeftBracket
	RightBracket
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	SemiColon
	Quote
	BackSlash
	IntlBackslash
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	Comma
	Dot
	Slash

	// Keypad
	KpReturn
	KpMinus
	KpPlus
	KpMultiply
	KpDivide
	Kp0
	Kp1
	Kp2
	Kp3
	Kp4
	Kp5
	Kp6
	Kp7
	Kp8
	Kp9
	KpDelete

	// Media
	VolumeUp
	VolumeDown
	VolumeMute
	MediaPlayPause
	MediaStop
	MediaNextTrack
	MediaPrevTrack

	keyCount
)

var names = [keyCount]string{
	Unknown:        "Unknown",
	Alt:            "Alt",
	AltGr:          "AltGr",
	Backspace:      "Backspace",
	CapsLock:       "CapsLock",
	ControlLeft:    "ControlLeft",
	ControlRight:   "ControlRight",
	Delete:         "Delete",
	End:            "End",
	Escape:         "Escape",
	Home:           "Home",
	Insert:         "Insert",
	MetaLeft:       "MetaLeft",
	MetaRight:      "MetaRight",
	PageDown:       "PageDown",
	PageUp:         "PageUp",
	Return:         "Return",
	ShiftLeft:      "ShiftLeft",
	ShiftRight:     "ShiftRight",
	Space:          "Space",
	Tab:            "Tab",
	Function:       "Function",
	UpArrow:        "UpArrow",
	DownArrow:      "DownArrow",
	LeftArrow:      "LeftArrow",
	RightArrow:     "RightArrow",
	PrintScreen:    "PrintScreen",
	ScrollLock:     "ScrollLock",
	Pause:          "Pause",
	NumLock:        "NumLock",
	F1:             "F1",
	F2:             "F2",
	F3:             "F3",
	F4:             "F4",
	F5:             "F5",
	F6:             "F6",
	F7:             "F7",
	F8:             "F8",
	F9:             "F9",
	F10:            "F10",
	F11:            "F11",
	F12:            "F12",
	BackQuote:      "BackQuote",
	Num1:           "Num1",
	Num2:           "Num2",
	Num3:           "Num3",
	Num4:           "Num4",
	Num5:           "Num5",
	Num6:           "Num6",
	Num7:           "Num7",
	Num8:           "Num8",
	Num9:           "Num9",
	Num0:           "Num0",
	Minus:          "Minus",
	Equal:          "Equal",
	KeyQ:           "KeyQ",
	KeyW:           "KeyW",
	KeyE:           "KeyE",
	KeyR:           "KeyR",
	KeyT:           "KeyT",
	KeyY:           "KeyY",
	KeyU:           "KeyU",
	KeyI:           "KeyI",
	KeyO:           "KeyO",
	KeyP:           "KeyP",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	KeyA:           "KeyA",
	KeyS:           "KeyS",
	KeyD:           "KeyD",
	KeyF:           "KeyF",
	KeyG:           "KeyG",
	KeyH:           "KeyH",
	KeyJ:           "KeyJ",
	KeyK:           "KeyK",
	KeyL:           "KeyL",
	SemiColon:      "SemiColon",
	Quote:          "Quote",
	BackSlash:      "BackSlash",
	IntlBackslash:  "IntlBackslash",
	KeyZ:           "KeyZ",
	KeyX:           "KeyX",
	KeyC:           "KeyC",
	KeyV:           "KeyV",
	KeyB:           "KeyB",
	KeyN:           "KeyN",
	KeyM:           "KeyM",
	Comma:          "Comma",
	Dot:            "Dot",
	Slash:          "Slash",
	KpReturn:       "KpReturn",
	KpMinus:        "KpMinus",
	KpPlus:         "KpPlus",
	KpMultiply:     "KpMultiply",
	KpDivide:       "KpDivide",
	Kp0:            "Kp0",
	Kp1:            "Kp1",
	Kp2:            "Kp2",
	Kp3:            "Kp3",
	Kp4:            "Kp4",
	Kp5:            "Kp5",
	Kp6:            "Kp6",
	Kp7:            "Kp7",
	Kp8:            "Kp8",
	Kp9:            "Kp9",
	KpDelete:       "KpDelete",
	VolumeUp:       "VolumeUp",
	VolumeDown:     "VolumeDown",
	VolumeMute:     "VolumeMute",
	MediaPlayPause: "MediaPlayPause",
	MediaStop:      "MediaStop",
	MediaNextTrack: "MediaNextTrack",
	MediaPrevTrack: "MediaPrevTrack",
}

// aliases are common spellings that are not key names. They are never
// accepted, only offered as a suggestion when validation fails.
var aliases = map[string]Key{
	"Enter":     Return,
	"Esc":       Escape,
	"PgUp":      PageUp,
	"PgDown":    PageDown,
	"Up":        UpArrow,
	"Down":      DownArrow,
	"Left":      LeftArrow,
	"Right":     RightArrow,
	"KpEnter":   KpReturn,
	"PlayPause": MediaPlayPause,
}

var byName = func() map[string]Key {
	m := make(map[string]Key, int(keyCount))
	for k := Key(1); k < keyCount; k++ {
		m[names[k]] = k
	}
	return m
}()

// String returns the canonical name of the key.
func (k Key) String() string {
	if k <= Unknown || k >= keyCount {
		return names[Unknown]
	}
	return names[k]
}

// Valid reports whether k is a recognized key other than Unknown.
func (k Key) Valid() bool {
	return k > Unknown && k < keyCount
}

// Validate resolves a human-readable key name to its Key.
// Matching is exact and case-sensitive.
func Validate(name string) (Key, error) {
	if k, ok := byName[name]; ok {
		return k, nil
	}
	return Unknown, &InvalidKeyNameError{Name: name, Suggestion: Suggest(name)}
}

// Suggest returns the key name most likely meant by an unrecognized name:
// the target of a common alias, or a case-insensitive match. It returns ""
// when there is nothing to suggest.
func Suggest(name string) string {
	if k, ok := aliases[name]; ok {
		return k.String()
	}
	for k := Key(1); k < keyCount; k++ {
		if strings.EqualFold(names[k], name) {
			return names[k]
		}
	}
	return ""
}

// Names returns every canonical key name, sorted.
func Names() []string {
	out := make([]string, 0, int(keyCount)-1)
	for k := Key(1); k < keyCount; k++ {
		out = append(out, names[k])
	}
	slices.Sort(out)
	return out
}

// Aliases returns a copy of the common spellings Suggest maps to key names.
func Aliases() map[string]Key {
	out := make(map[string]Key, len(aliases))
	for name, k := range aliases {
		out[name] = k
	}
	return out
}
