package kernel

import "github.com/xannyxs/ferrite/kernel/kfmt/early"

var (
	// haltFn is mocked by tests.
	haltFn = halt

	errRuntimePanic = &Error{Module: "rt", Message: "unknown cause"}
)

// Panic outputs the supplied error (if not nil) to the console and halts
// the CPU. Calls to Panic never return. There is no recovery mechanism at
// this stage of the boot process; any contract violation that reaches this
// point is fatal.
func Panic(e interface{}) {
	var err *Error

	switch t := e.(type) {
	case *Error:
		err = t
	case string:
		errRuntimePanic.Message = t
		err = errRuntimePanic
	case error:
		errRuntimePanic.Message = t.Error()
		err = errRuntimePanic
	}

	early.Printf("\n-----------------------------------\n")
	if err != nil {
		early.Printf("[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	early.Printf("*** kernel panic: system halted ***")
	early.Printf("\n-----------------------------------\n")

	haltFn()
}

// halt spins forever. Interrupts are never enabled at this stage so there
// is nothing that could wake the CPU up again.
func halt() {
	for {
	}
}
