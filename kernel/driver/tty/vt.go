package tty

import (
	"io"

	"github.com/xannyxs/ferrite/kernel/driver/video/console"
)

const (
	defaultFg = console.LightGrey
	defaultBg = console.Black

	// tabWidth defines the number of spaces that tabs expand to.
	tabWidth = 4

	// unprintable is the glyph used in place of bytes outside the
	// printable ASCII range.
	unprintable = byte(0xFE)
)

// Vt implements a simple terminal that renders a character stream into an
// attached console. The terminal interprets the following special
// characters:
//  - \r (carriage-return)
//  - \n (line-feed)
//  - \b (backspace)
//  - \t (tab; expanded to tabWidth spaces)
//
// The terminal does not scroll. When the cursor would move past the last
// row it wraps back to the top row instead; writes therefore always land
// inside the console geometry.
type Vt struct {
	// Go interfaces will not work before we can get memory allocation
	// working. Till then we need to use concrete types instead.
	cons *console.Vga

	width  uint16
	height uint16

	curX    uint16
	curY    uint16
	curAttr console.Attr
}

// AttachTo connects the terminal to a console and resets the cursor to the
// top-left corner.
func (t *Vt) AttachTo(cons *console.Vga) {
	if cons == nil {
		return
	}

	t.cons = cons
	t.width, t.height = cons.Dimensions()
	t.curX = 0
	t.curY = 0

	// Default to lightgrey on black text.
	t.curAttr = console.MakeAttr(defaultFg, defaultBg)
}

// Clear blanks the entire console under the default attribute and resets
// the cursor to (0, 0). Clear is idempotent.
func (t *Vt) Clear() {
	if t.cons == nil {
		return
	}

	t.cons.Clear(0, 0, t.width, t.height)
	t.curX, t.curY = 0, 0
}

// Dimensions returns the terminal width and height in characters.
func (t *Vt) Dimensions() (uint16, uint16) {
	return t.width, t.height
}

// Position returns the current cursor position (x, y).
func (t *Vt) Position() (uint16, uint16) {
	return t.curX, t.curY
}

// SetPosition sets the current cursor position to (x, y). Out-of-range
// coordinates are clipped to the console geometry.
func (t *Vt) SetPosition(x, y uint16) {
	if t.cons == nil {
		return
	}

	if x >= t.width {
		x = t.width - 1
	}

	if y >= t.height {
		y = t.height - 1
	}

	t.curX, t.curY = x, y
}

// WriteString renders the contents of s at the current cursor position.
// Calls before AttachTo are ignored.
func (t *Vt) WriteString(s string) {
	if t.cons == nil {
		return
	}

	for i := 0; i < len(s); i++ {
		t.WriteByte(s[i])
	}
}

// Write implements io.Writer.
func (t *Vt) Write(data []byte) (int, error) {
	for count, b := range data {
		if err := t.WriteByte(b); err != nil {
			return count, err
		}
	}

	return len(data), nil
}

// WriteByte implements io.ByteWriter.
func (t *Vt) WriteByte(b byte) error {
	if t.cons == nil {
		return io.ErrClosedPipe
	}

	switch b {
	case '\r':
		t.cr()
	case '\n':
		t.cr()
		t.lf()
	case '\b':
		if t.curX > 0 {
			t.curX--
			t.cons.Write(' ', t.curAttr, t.curX, t.curY)
		}
	case '\t':
		for i := 0; i < tabWidth; i++ {
			t.put(' ')
		}
	default:
		if b < ' ' || b > '~' {
			b = unprintable
		}
		t.put(b)
	}

	return nil
}

// put writes a single character at the cursor position and advances the
// cursor, wrapping at the end of the line.
func (t *Vt) put(b byte) {
	t.cons.Write(b, t.curAttr, t.curX, t.curY)
	t.curX++
	if t.curX == t.width {
		t.cr()
		t.lf()
	}
}

// cr resets the x coordinate of the terminal cursor to 0.
func (t *Vt) cr() {
	t.curX = 0
}

// lf advances the y coordinate of the terminal cursor by one line, wrapping
// back to the top row when the cursor passes the last line.
func (t *Vt) lf() {
	if t.curY+1 < t.height {
		t.curY++
		return
	}

	t.curY = 0
}
