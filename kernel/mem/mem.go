package mem

// This package provides the byte-level primitives that the rest of the
// kernel links against. The functions are allocation-free and only touch
// the spans they are given so they are safe to call before any runtime
// facility (allocator, threading, I/O) has been set up.
//
// Spans are passed as slices together with an explicit byte count. The
// count must not exceed the length of any span argument; violating this
// contract panics which, at this stage of the boot process, halts the
// kernel.

// Compare compares the first n bytes of a against b and returns 0 if they
// are equal, a positive value if the first mismatching byte of a is
// numerically greater than the corresponding byte of b and a negative
// value otherwise. Mismatching bytes are widened as unsigned values before
// subtraction. Compare always returns 0 when n is 0 or when both spans
// are backed by the same address.
func Compare(a, b []byte, n int) int {
	if n == 0 || sameAddress(a, b) {
		return 0
	}

	a, b = a[:n], b[:n]
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	return 0
}

// Copy copies n bytes from src to dst in low-to-high order and returns dst
// for chaining. If either span is nil, Copy returns nil without copying
// anything. The behavior is unspecified when the spans overlap; callers
// that need overlap-safe moves must not use Copy.
func Copy(dst, src []byte, n int) []byte {
	if dst == nil || src == nil {
		return nil
	}

	d, s := dst[:n], src[:n]
	for i := 0; i < n; i++ {
		d[i] = s[i]
	}

	return dst
}

// Fill writes value into each of the first n bytes of dst and returns dst.
// A zero n leaves dst untouched. Instead of a plain byte loop, Fill seeds
// the first byte and then doubles the filled region with log2(n) copy
// calls.
func Fill(dst []byte, value byte, n int) []byte {
	if n == 0 {
		return dst
	}

	target := dst[:n]
	target[0] = value
	for index := 1; index < n; index *= 2 {
		copy(target[index:], target[:index])
	}

	return dst
}

// CopyUntil copies bytes from src to dst one at a time, up to n bytes,
// stopping immediately after copying a byte equal to terminator. It
// returns the remainder of dst just past the copied terminator. If the
// terminator does not occur within the first n bytes of src, CopyUntil
// copies exactly n bytes and returns nil. The bytes copied before a nil
// return remain committed in dst.
func CopyUntil(dst, src []byte, terminator byte, n int) []byte {
	d, s := dst[:n], src[:n]
	for i := 0; i < n; i++ {
		d[i] = s[i]
		if s[i] == terminator {
			return dst[i+1:]
		}
	}

	return nil
}

// sameAddress reports whether a and b are views over the same base
// address. Empty spans never match; they are short-circuited by the
// zero-count check in Compare before the base address is probed.
func sameAddress(a, b []byte) bool {
	return len(a) != 0 && len(b) != 0 && &a[0] == &b[0]
}
