package terminal

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

const esc = 0x1b

// decodeKey decodes the first key in buf. It returns the number of bytes
// consumed, or 0 if buf holds only the start of a sequence and more input
// is needed. A lone ESC is reported as incomplete; the caller resolves it
// once no further bytes arrive.
func decodeKey(buf []byte) (KeyEvent, int) {
	if len(buf) == 0 {
		return KeyEvent{}, 0
	}

	b := buf[0]
	if b == esc {
		return decodeEscape(buf)
	}

	switch b {
	case '\r', '\n':
		return Special(KeyEnter), 1
	case 0x7f, 0x08:
		return Special(KeyBackspace), 1
	case '\t':
		return Special(KeyTab), 1
	}

	if b >= 0x01 && b <= 0x1a {
		return Ctrl(rune('a' + b - 1)), 1
	}
	if b < 0x20 {
		return Special(KeyUnknown), 1
	}

	if !utf8.FullRune(buf) {
		return KeyEvent{}, 0
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return Special(KeyUnknown), 1
	}
	return Char(r), size
}

func decodeEscape(buf []byte) (KeyEvent, int) {
	if len(buf) < 2 {
		return KeyEvent{}, 0
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		if len(buf) < 3 {
			return KeyEvent{}, 0
		}
		if k, ok := finalKeys[buf[2]]; ok {
			return Special(k), 3
		}
		return Special(KeyUnknown), 3
	case esc:
		return Special(KeyEscape), 1
	}

	// ESC followed by a key is the alt chord of that key.
	ev, n := decodeKey(buf[1:])
	if n == 0 {
		return KeyEvent{}, 0
	}
	return ev.With(ModAlt), n + 1
}

var finalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var tildeKeys = map[int]Key{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	7: KeyHome,
	8: KeyEnd,
}

// decodeCSI handles ESC [ params final. Parameters take the xterm form
// "code;modifier" where modifier-1 is a shift/alt/ctrl bit set.
func decodeCSI(buf []byte) (KeyEvent, int) {
	end := -1
	for j := 2; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			end = j
			break
		}
	}
	if end < 0 {
		return KeyEvent{}, 0
	}

	params := bytes.Split(buf[2:end], []byte{';'})
	code := atoiOr(params[0], 1)
	mod := ModNone
	if len(params) > 1 {
		mod = xtermModifier(atoiOr(params[1], 1))
	}

	final := buf[end]
	switch {
	case final == '~':
		if k, ok := tildeKeys[code]; ok {
			return Special(k).With(mod), end + 1
		}
	case final == 'Z':
		return Special(KeyTab).With(ModShift), end + 1
	default:
		if k, ok := finalKeys[final]; ok {
			return Special(k).With(mod), end + 1
		}
	}
	return Special(KeyUnknown), end + 1
}

func xtermModifier(n int) Modifier {
	bits := n - 1
	var mod Modifier
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

func atoiOr(b []byte, def int) int {
	if len(b) == 0 {
		return def
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return def
	}
	return n
}

// findCursorReport locates a Device Status Report reply (ESC [ row ; col R)
// in buf. It returns the one-based row and the span of the reply.
func findCursorReport(buf []byte) (row, start, end int, ok bool) {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] != esc || buf[i+1] != '[' {
			continue
		}
		j := i + 2
		rowStart := j
		for j < len(buf) && buf[j] >= '0' && buf[j] <= '9' {
			j++
		}
		if j == rowStart || j >= len(buf) || buf[j] != ';' {
			continue
		}
		rowEnd := j
		j++
		colStart := j
		for j < len(buf) && buf[j] >= '0' && buf[j] <= '9' {
			j++
		}
		if j == colStart || j >= len(buf) || buf[j] != 'R' {
			continue
		}
		row, err := strconv.Atoi(string(buf[rowStart:rowEnd]))
		if err != nil {
			continue
		}
		return row, i, j + 1, true
	}
	return 0, 0, 0, false
}
