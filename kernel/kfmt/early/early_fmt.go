package early

import "github.com/xannyxs/ferrite/kernel/hal"

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")
)

// Printf provides a minimal Printf implementation that can be used before
// the Go runtime has been properly initialized. This version of printf does
// not allocate any memory and uses hal.ActiveTerminal for its output.
//
// Similar to fmt.Printf, this version of printf supports the following
// subset of formatting verbs:
//
// Strings:
//		%s the uninterpreted bytes of the string or byte slice
//
// Integers:
//		%o base 8
//		%d base 10
//		%x base 16, with lower-case letters for a-f
//
// Booleans:
//		%t "true" or "false"
//
// Width is specified by an optional decimal number immediately preceding
// the verb. If absent, the width is whatever is necessary to represent the
// value. String and base-10 values shorter than the width are left-padded
// with spaces; base-8 and base-16 values are left-padded with zeroes.
func Printf(format string, args ...interface{}) {
	var (
		nextArgIndex int
		fmtLen       = len(format)
	)

	for i := 0; i < fmtLen; i++ {
		if format[i] != '%' {
			hal.ActiveTerminal.WriteByte(format[i])
			continue
		}

		// Scan the optional pad width til we hit the verb character.
		i++
		padLen := 0
		for ; i < fmtLen && format[i] >= '0' && format[i] <= '9'; i++ {
			padLen = (padLen * 10) + int(format[i]-'0')
		}

		if i == fmtLen {
			write(errNoVerb)
			break
		}

		verb := format[i]
		if verb == '%' {
			hal.ActiveTerminal.WriteByte('%')
			continue
		}

		switch verb {
		case 'd', 'o', 'x', 's', 't':
		default:
			write(errNoVerb)
			continue
		}

		// Run out of args to print
		if nextArgIndex >= len(args) {
			write(errMissingArg)
			continue
		}

		switch verb {
		case 'o':
			fmtInt(args[nextArgIndex], 8, padLen)
		case 'd':
			fmtInt(args[nextArgIndex], 10, padLen)
		case 'x':
			fmtInt(args[nextArgIndex], 16, padLen)
		case 's':
			fmtString(args[nextArgIndex], padLen)
		case 't':
			fmtBool(args[nextArgIndex])
		}

		nextArgIndex++
	}

	// Check for unused args
	for ; nextArgIndex < len(args); nextArgIndex++ {
		write(errExtraArg)
	}
}

// fmtBool prints a boolean value without using the formatting machinery of
// the strconv package.
func fmtBool(v interface{}) {
	switch t := v.(type) {
	case bool:
		if t {
			write(trueValue)
		} else {
			write(falseValue)
		}
	default:
		write(errWrongArgType)
	}
}

// fmtString prints a string or byte slice argument left-padding it with
// spaces up to padLen.
func fmtString(v interface{}, padLen int) {
	switch t := v.(type) {
	case string:
		for pad := padLen - len(t); pad > 0; pad-- {
			hal.ActiveTerminal.WriteByte(' ')
		}
		for i := 0; i < len(t); i++ {
			hal.ActiveTerminal.WriteByte(t[i])
		}
	case []byte:
		for pad := padLen - len(t); pad > 0; pad-- {
			hal.ActiveTerminal.WriteByte(' ')
		}
		write(t)
	default:
		write(errWrongArgType)
	}
}

// fmtInt prints an integer argument in the requested base. Base-10 values
// are left-padded with spaces; other bases are left-padded with zeroes. The
// sign, if any, always precedes the padding digits.
func fmtInt(v interface{}, base, padLen int) {
	var (
		value    uint64
		negative bool
	)

	switch t := v.(type) {
	case uint8:
		value = uint64(t)
	case uint16:
		value = uint64(t)
	case uint32:
		value = uint64(t)
	case uint64:
		value = t
	case uint:
		value = uint64(t)
	case uintptr:
		value = uint64(t)
	case int8:
		value, negative = absolute(int64(t))
	case int16:
		value, negative = absolute(int64(t))
	case int32:
		value, negative = absolute(int64(t))
	case int64:
		value, negative = absolute(t)
	case int:
		value, negative = absolute(int64(t))
	default:
		write(errWrongArgType)
		return
	}

	// Emit digits into a scratch buffer in reverse order. 22 bytes cover
	// a 64-bit value in base 8.
	var (
		buf       [22]byte
		digitLen  int
		hexDigits = "0123456789abcdef"
	)

	for {
		buf[digitLen] = hexDigits[value%uint64(base)]
		digitLen++
		value /= uint64(base)
		if value == 0 {
			break
		}
	}

	totalLen := digitLen
	if negative {
		totalLen++
	}

	padByte := byte('0')
	if base == 10 {
		padByte = ' '
	}

	if padByte == ' ' {
		for pad := padLen - totalLen; pad > 0; pad-- {
			hal.ActiveTerminal.WriteByte(padByte)
		}
		if negative {
			hal.ActiveTerminal.WriteByte('-')
		}
	} else {
		if negative {
			hal.ActiveTerminal.WriteByte('-')
		}
		for pad := padLen - totalLen; pad > 0; pad-- {
			hal.ActiveTerminal.WriteByte(padByte)
		}
	}

	for digitLen--; digitLen >= 0; digitLen-- {
		hal.ActiveTerminal.WriteByte(buf[digitLen])
	}
}

// absolute splits a signed value into its magnitude and sign.
func absolute(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}

func write(b []byte) {
	for i := 0; i < len(b); i++ {
		hal.ActiveTerminal.WriteByte(b[i])
	}
}
