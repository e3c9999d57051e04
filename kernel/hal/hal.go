package hal

import (
	"github.com/xannyxs/ferrite/kernel/driver/tty"
	"github.com/xannyxs/ferrite/kernel/driver/video/console"
)

var (
	vgaConsole = &console.Vga{}

	// ActiveTerminal points to the currently active terminal.
	ActiveTerminal = &tty.Vt{}
)

// InitTerminal provides a basic terminal to allow the kernel to emit some
// output till everything is properly setup. The console geometry and frame
// buffer address are configuration constants; the boot environment
// guarantees that the region is mapped and writable before the kernel entry
// point runs.
func InitTerminal() {
	vgaConsole.Init(console.Width, console.Height, console.FrameBufferAddr)
	ActiveTerminal.AttachTo(vgaConsole)
}
