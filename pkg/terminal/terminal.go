// Package terminal defines the surface the line editor draws on and reads
// keys from, together with the backends that implement it.
package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Terminal is the control surface consumed by the editor. Rows and columns
// are zero-based and absolute within the visible window.
type Terminal interface {
	// ReadKey blocks until the next key is available. It returns io.EOF once
	// the key source is exhausted.
	ReadKey() (KeyEvent, error)
	Write(text string)
	SetCursorPosition(column, row int)
	CursorRow() int
	WindowWidth() int
	// WindowHeight returns the number of visible rows, or 0 when unknown.
	WindowHeight() int
}

// Key identifies a non-character key. Keys carrying a character use KeyRune.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyTab
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEscape:    "escape",
	KeyTab:       "tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl

	ModNone Modifier = 0
)

// KeyEvent is one decoded key press. Rune is set for KeyRune and is 0
// otherwise. Control chords such as Ctrl+A arrive as KeyRune with the
// lowercase letter and ModCtrl.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// Char returns a printable rune event
func Char(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Ctrl returns a control chord event for a letter
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// Special returns an event for a non-character key
func Special(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// With returns a copy of e with mod added
func (e KeyEvent) With(mod Modifier) KeyEvent {
	e.Mod |= mod
	return e
}

// Printable reports whether the event should be inserted as text: it
// carries a visible rune and no ctrl or alt chord.
func (e KeyEvent) Printable() bool {
	if e.Rune == 0 || e.Mod&(ModCtrl|ModAlt) != 0 {
		return false
	}
	return unicode.IsPrint(e.Rune)
}

// String renders the event in the notation accepted by ParseKey, for
// example "ctrl+a", "alt+left" or "x".
func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Mod&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if e.Mod&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if e.Mod&ModShift != 0 {
		sb.WriteString("shift+")
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			sb.WriteString("space")
		} else {
			sb.WriteRune(e.Rune)
		}
	} else {
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}

var namedKeys = map[string]Key{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"left":      KeyLeft,
	"right":     KeyRight,
	"up":        KeyUp,
	"down":      KeyDown,
	"home":      KeyHome,
	"end":       KeyEnd,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"tab":       KeyTab,
}

// ParseKey parses names such as "up", "ctrl+a", "alt+b" or "ctrl+left"
func ParseKey(name string) (KeyEvent, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	var ev KeyEvent
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl", "control", "c":
			ev.Mod |= ModCtrl
		case "alt", "meta", "m":
			ev.Mod |= ModAlt
		case "shift", "s":
			ev.Mod |= ModShift
		default:
			return KeyEvent{}, fmt.Errorf("unknown modifier %q in key %q", mod, name)
		}
	}

	last := parts[len(parts)-1]
	if k, ok := namedKeys[last]; ok {
		ev.Key = k
		return ev, nil
	}
	if last == "space" {
		ev.Key, ev.Rune = KeyRune, ' '
		return ev, nil
	}
	if utf8.RuneCountInString(last) == 1 {
		r, _ := utf8.DecodeRuneInString(last)
		ev.Key, ev.Rune = KeyRune, r
		return ev, nil
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", name)
}
