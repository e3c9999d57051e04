package kernel

import (
	"github.com/xannyxs/ferrite/kernel/hal"
	"github.com/xannyxs/ferrite/kernel/kfmt/early"
)

// Kmain is the only Go symbol that is visible (exported) from the rt0
// initialization code. It is invoked once the CPU is in a state where the
// text-mode frame buffer is mapped and writable.
//
// Kmain initializes and clears the active terminal, emits the boot banner
// and then idles. It is not expected to return; if it does, the rt0 code
// will halt the CPU.
func Kmain() {
	hal.InitTerminal()
	hal.ActiveTerminal.Clear()

	w, h := hal.ActiveTerminal.Dimensions()
	early.Printf("Starting ferrite\n")
	early.Printf("console: %dx%d text mode\n", w, h)

	// Prevent Kmain from returning
	for {
	}
}
