package input

import "strings"

// Key is a logical key from the closed set the snapshot tracks.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeySpace
	KeyEnter
	KeyKPEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyMinus
	KeyEqual
	KeyPeriod
	KeyComma
	KeyBracketLeft
	KeyBracketRight
	KeyKPPlus
	KeyKPMinus
	KeyKPPeriod
	KeyShift
	KeyCtrl
	KeyAlt
	KeyMeta
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

// KeyCount is the size of the closed key set, including KeyNone.
const KeyCount = int(keyCount)

var keyNames = [KeyCount]string{
	KeyNone:           "",
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeyKP0:            "KP_0",
	KeyKP1:            "KP_1",
	KeyKP2:            "KP_2",
	KeyKP3:            "KP_3",
	KeyKP4:            "KP_4",
	KeyKP5:            "KP_5",
	KeyKP6:            "KP_6",
	KeyKP7:            "KP_7",
	KeyKP8:            "KP_8",
	KeyKP9:            "KP_9",
	KeySpace:          "SPACE",
	KeyEnter:          "ENTER",
	KeyKPEnter:        "KP_ENTER",
	KeyEscape:         "ESCAPE",
	KeyTab:            "TAB",
	KeyBackspace:      "BACKSPACE",
	KeyInsert:         "INSERT",
	KeyDelete:         "DELETE",
	KeyHome:           "HOME",
	KeyEnd:            "END",
	KeyPageUp:         "PAGEUP",
	KeyPageDown:       "PAGEDOWN",
	KeyRight:          "RIGHT",
	KeyLeft:           "LEFT",
	KeyDown:           "DOWN",
	KeyUp:             "UP",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyMinus:          "MINUS",
	KeyEqual:          "EQUAL",
	KeyPeriod:         "PERIOD",
	KeyComma:          "COMMA",
	KeyBracketLeft:    "BRACKETLEFT",
	KeyBracketRight:   "BRACKETRIGHT",
	KeyKPPlus:         "KP_ADD",
	KeyKPMinus:        "KP_SUBTRACT",
	KeyKPPeriod:       "KP_PERIOD",
	KeyShift:          "SHIFT",
	KeyCtrl:           "CTRL",
	KeyAlt:            "ALT",
	KeyMeta:           "META",
	MouseButtonLeft:   "MOUSE_LEFT",
	MouseButtonRight:  "MOUSE_RIGHT",
	MouseButtonMiddle: "MOUSE_MIDDLE",
}

// Alternate spellings accepted in configuration.
var keyAliases = map[string]Key{
	"ESC":       KeyEscape,
	"RETURN":    KeyEnter,
	"CONTROL":   KeyCtrl,
	"CMD":       KeyMeta,
	"COMMAND":   KeyMeta,
	"PAGE_UP":   KeyPageUp,
	"PAGE_DOWN": KeyPageDown,
	"DOT":       KeyPeriod,
	".":         KeyPeriod,
	"-":         KeyMinus,
	"=":         KeyEqual,
	"[":         KeyBracketLeft,
	"]":         KeyBracketRight,
	"PLUS":      KeyKPPlus,
	"LMB":       MouseButtonLeft,
	"RMB":       MouseButtonRight,
	"MMB":       MouseButtonMiddle,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, KeyCount+len(keyAliases))
	for k := KeyNone + 1; k < keyCount; k++ {
		m[keyNames[k]] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return ""
	}
	return keyNames[k]
}

// IsModifier reports whether k is one of SHIFT, CTRL, ALT or META.
func (k Key) IsModifier() bool {
	return k == KeyShift || k == KeyCtrl || k == KeyAlt || k == KeyMeta
}

// IsMouseButton reports whether k is a mouse button rather than a keyboard key.
func (k Key) IsMouseButton() bool {
	return k == MouseButtonLeft || k == MouseButtonRight || k == MouseButtonMiddle
}

// KeyByName resolves a configured key name. Lookup is case-insensitive;
// unknown names yield KeyNone, false.
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// Digit keys in ascending scan order, main row before keypad.
var digitKeys = [...]struct {
	key   Key
	value int
}{
	{Key0, 0}, {Key1, 1}, {Key2, 2}, {Key3, 3}, {Key4, 4},
	{Key5, 5}, {Key6, 6}, {Key7, 7}, {Key8, 8}, {Key9, 9},
	{KeyKP0, 0}, {KeyKP1, 1}, {KeyKP2, 2}, {KeyKP3, 3}, {KeyKP4, 4},
	{KeyKP5, 5}, {KeyKP6, 6}, {KeyKP7, 7}, {KeyKP8, 8}, {KeyKP9, 9},
}
