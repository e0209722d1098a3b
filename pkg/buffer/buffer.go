package buffer

import (
	"errors"
	"unicode"
)

// ErrOutOfRange is returned when an index falls outside the buffer.
var ErrOutOfRange = errors.New("buffer index out of range")

// Buffer holds the runes of the line being edited. It is not safe for
// concurrent use.
type Buffer struct {
	runes []rune
}

// New creates a buffer holding s
func New(s string) *Buffer {
	return &Buffer{runes: []rune(s)}
}

// Len returns the number of runes in the buffer
func (b *Buffer) Len() int {
	return len(b.runes)
}

// String returns the buffer content
func (b *Buffer) String() string {
	return string(b.runes)
}

// Insert places r before index. Valid indices are [0, Len].
func (b *Buffer) Insert(index int, r rune) error {
	if index < 0 || index > len(b.runes) {
		return ErrOutOfRange
	}
	b.runes = append(b.runes, 0)
	copy(b.runes[index+1:], b.runes[index:])
	b.runes[index] = r
	return nil
}

// InsertString places every rune of s before index.
func (b *Buffer) InsertString(index int, s string) error {
	if index < 0 || index > len(b.runes) {
		return ErrOutOfRange
	}
	add := []rune(s)
	if len(add) == 0 {
		return nil
	}
	out := make([]rune, 0, len(b.runes)+len(add))
	out = append(out, b.runes[:index]...)
	out = append(out, add...)
	out = append(out, b.runes[index:]...)
	b.runes = out
	return nil
}

// RemoveAt deletes the rune at index. Valid indices are [0, Len).
func (b *Buffer) RemoveAt(index int) error {
	if index < 0 || index >= len(b.runes) {
		return ErrOutOfRange
	}
	b.runes = append(b.runes[:index], b.runes[index+1:]...)
	return nil
}

// RemoveRange deletes the runes in [from, to).
func (b *Buffer) RemoveRange(from, to int) error {
	if from < 0 || to > len(b.runes) || from > to {
		return ErrOutOfRange
	}
	b.runes = append(b.runes[:from], b.runes[to:]...)
	return nil
}

// Truncate drops everything from index to the end.
func (b *Buffer) Truncate(index int) error {
	return b.RemoveRange(index, len(b.runes))
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
}

// Set replaces the whole content with s
func (b *Buffer) Set(s string) {
	b.runes = append(b.runes[:0], []rune(s)...)
}

// isWordRune reports whether r belongs to a word. Punctuation and
// whitespace are delimiters, as in readline.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// PrevWordStart returns the index where the word before pos starts.
// Delimiters directly before pos are skipped first.
func (b *Buffer) PrevWordStart(pos int) int {
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	for pos > 0 && !isWordRune(b.runes[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(b.runes[pos-1]) {
		pos--
	}
	return pos
}

// NextWordEnd returns the index just past the end of the word at or after pos.
func (b *Buffer) NextWordEnd(pos int) int {
	if pos < 0 {
		pos = 0
	}
	for pos < len(b.runes) && !isWordRune(b.runes[pos]) {
		pos++
	}
	for pos < len(b.runes) && isWordRune(b.runes[pos]) {
		pos++
	}
	return pos
}
