package binstamp

import "fmt"

// DateTimeValues is the shared intermediate every per-format decoder
// converts into before rendering. All fields are unsigned; validation is
// performed by the renderer, not at construction time, so a DateTimeValues
// can hold out-of-range fields produced by a bad wire value.
type DateTimeValues struct {
	Year   uint16 // 0-9999
	Month  uint8  // 1-12
	Day    uint8  // 1-31, depending on month/year
	Hours  uint8  // 0-23
	Minutes uint8 // 0-59
	Seconds uint8 // 0-59

	// Sub-second fields cascade: the total sub-second value, in
	// nanoseconds, is MilliSeconds*1e6 + MicroSeconds*1e3 + NanoSeconds.
	MilliSeconds uint16 // 0-999
	MicroSeconds uint16 // 0-999
	NanoSeconds  uint16 // 0-999
}

// valid reports whether every field of v is within its documented range,
// in the short-circuit order spec §4.2 requires.
func (v DateTimeValues) valid() bool {
	switch {
	case v.Year > 9999:
		return false
	case v.Month < 1 || v.Month > 12:
		return false
	case v.Day < 1 || int(v.Day) > daysInMonth(int(v.Month), int(v.Year)):
		return false
	case v.Hours > 23:
		return false
	case v.Minutes > 59:
		return false
	case v.Seconds > 59:
		return false
	case v.MilliSeconds > 999:
		return false
	case v.MicroSeconds > 999:
		return false
	case v.NanoSeconds > 999:
		return false
	default:
		return true
	}
}

var shortMonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Flags is the format bitfield controlling which components of a
// DateTimeValues are rendered.
type Flags uint8

// The format flags. DateTime is the OR of Date and Time.
const (
	Date Flags = 1 << iota
	Time
	MilliSeconds
	MicroSeconds
	NanoSeconds

	DateTime = Date | Time
)

func (f Flags) has(bit Flags) bool {
	return f&bit != 0
}

// Valid reports whether f contains only recognized flag bits, letting a
// caller check its input before passing it to a renderer rather than
// discovering a Runtime/UnsupportedValue failure from the call itself.
func (f Flags) Valid() bool {
	const known = Date | Time | MilliSeconds | MicroSeconds | NanoSeconds
	return f&^known == 0
}

// fractionPrecision returns the number of fractional digits to render (0,
// 3, 6, or 9) for the given flags, per spec §4.2's cascading sub-second
// rule: NanoSeconds implies the full 9-digit nanosecond total, MicroSeconds
// (without NanoSeconds) implies a 6-digit microsecond total, MilliSeconds
// alone implies a 3-digit millisecond value.
func (f Flags) fractionPrecision() int {
	switch {
	case f.has(NanoSeconds):
		return 9
	case f.has(MicroSeconds):
		return 6
	case f.has(MilliSeconds):
		return 3
	default:
		return 0
	}
}

// FormatType selects between the CTIME-style and ISO-8601 textual layouts.
type FormatType byte

// The two supported format types.
const (
	CTIME   FormatType = 0x01
	ISO8601 FormatType = 0x02
)

func (t FormatType) valid() bool {
	return t == CTIME || t == ISO8601
}

// Valid reports whether t is one of the recognized format types,
// exported for the same reason as Flags.Valid.
func (t FormatType) Valid() bool {
	return t.valid()
}

// totalSubSecondNanos returns the cascaded sub-second total, in
// nanoseconds, per spec §3.
func (v DateTimeValues) totalSubSecondNanos() int {
	return int(v.MilliSeconds)*1_000_000 + int(v.MicroSeconds)*1_000 + int(v.NanoSeconds)
}

// GetStringSize computes the exact buffer size (in code units, including
// the terminating NUL) that CopyToString needs to render v under flags and
// format, per the table in spec §4.2. It does not validate v; callers that
// want a fallback size when v fails validation should add the appropriate
// hex-fallback width themselves.
func GetStringSize(flags Flags, format FormatType) (int, error) {
	if !format.valid() {
		return 0, NewError(DomainRuntime, CodeUnsupportedValue, "GetStringSize: format type")
	}
	if !flags.Valid() {
		return 0, NewError(DomainRuntime, CodeUnsupportedValue, "GetStringSize: flags")
	}

	size := 0
	if flags.has(Date) {
		if format == CTIME {
			size += 12 // "Mmm dd, yyyy"
		} else {
			size += 10 // "yyyy-mm-dd"
		}
	}

	if flags.has(Date) && flags.has(Time) {
		size++ // separator: space (CTIME) or 'T' (ISO8601)
	}

	if flags.has(Time) {
		size += 8 // "HH:MM:SS"

		switch flags.fractionPrecision() {
		case 3:
			size += 4
		case 6:
			size += 7
		case 9:
			size += 10
		}
	}

	return size + 1, nil // + NUL
}

// codeUnit constrains the character widths CopyToString can render into:
// UTF-8 bytes, UTF-16 code units, and UTF-32 code units. Every character
// this package emits is pure ASCII (<= 0x7F), so a single generic
// implementation covers all three widths without per-width copy-paste.
type codeUnit interface {
	~byte | ~uint16 | ~uint32
}

// writeASCII appends the bytes of s, cast to T, onto buf starting at *idx,
// advancing *idx. The caller must have already checked there is room.
func writeASCII[T codeUnit](buf []T, idx *int, s string) {
	for i := 0; i < len(s); i++ {
		buf[*idx] = T(s[i])
		*idx++
	}
}

// CopyToStringWithIndex renders v into buf[*idx:], advancing *idx, per
// spec §4.2. It returns 1 on success, 0 if v fails validation (the caller
// should then fall back to the hex representation), and -1 on a usage
// error (nil buffer, buffer too small, or unsupported flags/format).
func CopyToStringWithIndex[T codeUnit](v DateTimeValues, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	if buf == nil || idx == nil {
		report(sink, DomainArguments, CodeInvalidValue, "CopyToStringWithIndex")
		return -1
	}
	if !format.valid() {
		report(sink, DomainRuntime, CodeUnsupportedValue, "CopyToStringWithIndex: format type")
		return -1
	}

	size, err := GetStringSize(flags, format)
	if err != nil {
		report(sink, DomainRuntime, CodeUnsupportedValue, "CopyToStringWithIndex: flags")
		return -1
	}
	if *idx < 0 || *idx+size > len(buf) {
		report(sink, DomainArguments, CodeValueTooSmall, "CopyToStringWithIndex: buffer")
		return -1
	}

	if !v.valid() {
		return 0
	}

	if flags.has(Date) {
		if format == CTIME {
			writeASCII(buf, idx, fmt.Sprintf("%s %02d, %04d", shortMonthNames[v.Month-1], v.Day, v.Year))
		} else {
			writeASCII(buf, idx, fmt.Sprintf("%04d-%02d-%02d", v.Year, v.Month, v.Day))
		}
	}

	if flags.has(Date) && flags.has(Time) {
		if format == CTIME {
			writeASCII(buf, idx, " ")
		} else {
			writeASCII(buf, idx, "T")
		}
	}

	if flags.has(Time) {
		writeASCII(buf, idx, fmt.Sprintf("%02d:%02d:%02d", v.Hours, v.Minutes, v.Seconds))

		total := v.totalSubSecondNanos()
		switch flags.fractionPrecision() {
		case 3:
			writeASCII(buf, idx, fmt.Sprintf(".%03d", total/1_000_000))
		case 6:
			writeASCII(buf, idx, fmt.Sprintf(".%06d", total/1_000))
		case 9:
			writeASCII(buf, idx, fmt.Sprintf(".%09d", total))
		}
	}

	buf[*idx] = 0
	*idx++
	return 1
}

// CopyToString renders v starting at index 0 of a freshly-sized buffer and
// returns the rendered text, or an error matching the -1/0 result of
// CopyToStringWithIndex.
func CopyToString(v DateTimeValues, flags Flags, format FormatType) (string, error) {
	size, err := GetStringSize(flags, format)
	if err != nil {
		return "", err
	}

	buf := make([]byte, size)
	idx := 0
	switch CopyToStringWithIndex(v, buf, &idx, flags, format, nil) {
	case 1:
		return string(buf[:idx-1]), nil
	case 0:
		return "", NewError(DomainRuntime, CodeOutOfBounds, "CopyToString: invalid values")
	default:
		return "", NewError(DomainArguments, CodeInvalidValue, "CopyToString")
	}
}
