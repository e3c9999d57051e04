package kernel

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"github.com/xannyxs/ferrite/kernel/driver/video/console"
	"github.com/xannyxs/ferrite/kernel/hal"
)

func TestPanic(t *testing.T) {
	defer func() {
		haltFn = halt
	}()

	var haltCalled bool
	haltFn = func() {
		haltCalled = true
	}

	t.Run("with error", func(t *testing.T) {
		haltCalled = false
		fb := mockTTY()
		err := &Error{Module: "test", Message: "panic test"}

		Panic(err)

		exp := "\n-----------------------------------\n[test] unrecoverable error: panic test\n*** kernel panic: system halted ***\n-----------------------------------"

		if got := readTTY(fb); got != exp {
			t.Fatalf("expected to get:\n%q\ngot:\n%q", exp, got)
		}

		if !haltCalled {
			t.Fatal("expected Panic to halt the CPU")
		}
	})

	t.Run("with string", func(t *testing.T) {
		haltCalled = false
		fb := mockTTY()

		Panic("something broke")

		exp := "\n-----------------------------------\n[rt] unrecoverable error: something broke\n*** kernel panic: system halted ***\n-----------------------------------"

		if got := readTTY(fb); got != exp {
			t.Fatalf("expected to get:\n%q\ngot:\n%q", exp, got)
		}

		if !haltCalled {
			t.Fatal("expected Panic to halt the CPU")
		}
	})

	t.Run("with go error", func(t *testing.T) {
		haltCalled = false
		fb := mockTTY()

		Panic(errors.New("wrapped"))

		exp := "\n-----------------------------------\n[rt] unrecoverable error: wrapped\n*** kernel panic: system halted ***\n-----------------------------------"

		if got := readTTY(fb); got != exp {
			t.Fatalf("expected to get:\n%q\ngot:\n%q", exp, got)
		}
	})

	t.Run("without error", func(t *testing.T) {
		haltCalled = false
		fb := mockTTY()

		Panic(nil)

		exp := "\n-----------------------------------\n*** kernel panic: system halted ***\n-----------------------------------"

		if got := readTTY(fb); got != exp {
			t.Fatalf("expected to get:\n%q\ngot:\n%q", exp, got)
		}

		if !haltCalled {
			t.Fatal("expected Panic to halt the CPU")
		}
	})
}

func readTTY(fb []byte) string {
	var buf bytes.Buffer
	for i := 0; i < len(fb); i += 2 {
		ch := fb[i]
		if ch == 0 {
			if i+2 < len(fb) && fb[i+2] != 0 {
				buf.WriteByte('\n')
			}
			continue
		}

		buf.WriteByte(ch)
	}

	return buf.String()
}

func mockTTY() []byte {
	// Mock a tty to handle early.Printf output
	mockConsoleFb := make([]byte, console.Width*console.Height*2)
	mockConsole := &console.Vga{}
	mockConsole.Init(console.Width, console.Height, uintptr(unsafe.Pointer(&mockConsoleFb[0])))
	hal.ActiveTerminal.AttachTo(mockConsole)

	return mockConsoleFb
}
