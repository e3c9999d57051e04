package console

import (
	"reflect"
	"unsafe"

	"github.com/xannyxs/ferrite/kernel/mem"
)

// VGA text mode 3 geometry and cell encoding. Each cell occupies two
// consecutive bytes in video memory: the ASCII code followed by the color
// attribute. These values are fixed by the hardware and are not probed at
// runtime.
const (
	Width  = 80
	Height = 25

	// FrameBufferAddr is the physical address where the text-mode frame
	// buffer is mapped by the hardware.
	FrameBufferAddr = uintptr(0xB8000)

	bytesPerCell = 2

	clearChar = byte(' ')
)

// clearAttr is the attribute used for cleared cells; light grey text on a
// black background.
var clearAttr = MakeAttr(LightGrey, Black)

// Vga implements an EGA-compatible text console backed by a fixed
// hardware-mapped frame buffer. Coordinates are 0-based with (0, 0) at the
// top-left corner.
type Vga struct {
	width  uint16
	height uint16

	fb []byte
}

// Init sets up the console geometry and overlays the frame buffer slice on
// top of the supplied physical address. Calling Init again with the same
// arguments is a no-op in terms of observable state.
func (cons *Vga) Init(width, height uint16, fbPhysAddr uintptr) {
	cons.width = width
	cons.height = height

	// Set up the frame buffer object by creating a fake slice object
	// pointing to the physical address of the screen buffer.
	size := int(width) * int(height) * bytesPerCell
	cons.fb = *(*[]byte)(unsafe.Pointer(&reflect.SliceHeader{
		Len:  size,
		Cap:  size,
		Data: fbPhysAddr,
	}))
}

// Dimensions returns the console width and height in characters.
func (cons *Vga) Dimensions() (uint16, uint16) {
	return cons.width, cons.height
}

// Clear fills the specified rectangular region with blank characters. The
// rectangle is clipped to the console geometry.
func (cons *Vga) Clear(x, y, width, height uint16) {
	if x >= cons.width {
		x = cons.width
	}
	if y >= cons.height {
		y = cons.height
	}

	// The comparisons are written against the remaining span so that a
	// large width or height cannot wrap around uint16 and defeat the clip.
	if width > cons.width-x {
		width = cons.width - x
	}
	if height > cons.height-y {
		height = cons.height - y
	}

	var (
		stride    = int(cons.width) * bytesPerCell
		rowOffset = (int(y)*int(cons.width) + int(x)) * bytesPerCell
		rowLen    = int(width) * bytesPerCell
	)

	for ; height > 0; height, rowOffset = height-1, rowOffset+stride {
		fillCells(cons.fb[rowOffset:rowOffset+rowLen], clearChar, clearAttr)
	}
}

// Scroll a particular number of lines to the specified direction. The
// vacated lines keep their previous contents; callers are expected to
// clear them.
func (cons *Vga) Scroll(dir ScrollDir, lines uint16) {
	if lines == 0 || lines > cons.height {
		return
	}

	var (
		stride = int(cons.width) * bytesPerCell
		offset = int(lines) * stride
	)

	// Rows are moved one at a time so that each copy operates on a pair
	// of disjoint spans.
	switch dir {
	case Up:
		for row := 0; row < int(cons.height-lines); row++ {
			dst := cons.fb[row*stride:]
			mem.Copy(dst, dst[offset:], stride)
		}
	case Down:
		for row := int(cons.height) - 1; row >= int(lines); row-- {
			dst := cons.fb[row*stride:]
			mem.Copy(dst, cons.fb[row*stride-offset:], stride)
		}
	}
}

// Write a char to the specified location. Writes outside the console
// geometry are ignored.
func (cons *Vga) Write(ch byte, attr Attr, x, y uint16) {
	if x >= cons.width || y >= cons.height {
		return
	}

	offset := (int(y)*int(cons.width) + int(x)) * bytesPerCell
	cons.fb[offset] = ch
	cons.fb[offset+1] = byte(attr)
}

// fillCells writes the ch/attr pair into every cell of the supplied region.
// The first cell is seeded by hand and the pattern is then doubled across
// the region.
func fillCells(region []byte, ch byte, attr Attr) {
	if len(region) == 0 {
		return
	}

	region[0] = ch
	region[1] = byte(attr)

	for filled := bytesPerCell; filled < len(region); {
		n := filled
		if filled+n > len(region) {
			n = len(region) - filled
		}
		mem.Copy(region[filled:], region, n)
		filled += n
	}
}
