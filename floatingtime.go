package binstamp

import "math"

// Floatingtime is the OLE Automation FLOATINGTIME: an IEEE-754 double
// whose integer part counts days since 1899-12-30T00:00:00 and whose
// fractional part, times 86,400, is the seconds-of-day.
type Floatingtime struct {
	Value float64
}

// NewFloatingtime allocates a zero-initialized Floatingtime via alloc (or
// DefaultAllocator if nil).
func NewFloatingtime(alloc Allocator) (*Floatingtime, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(8); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "Floatingtime.Initialize", err)
	}
	return &Floatingtime{}, nil
}

// CopyFromByteStream reads 8 bytes of b as an IEEE-754 double under the
// given byte order.
func (f *Floatingtime) CopyFromByteStream(b []byte, e Endian) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "Floatingtime.CopyFromByteStream: endian")
	}
	if len(b) < 8 {
		return NewError(DomainArguments, CodeValueTooSmall, "Floatingtime.CopyFromByteStream")
	}
	f.Value = math.Float64frombits(readUint64(b[0:8], e))
	return nil
}

// CopyToByteStream packs f into 8 bytes using the given byte order.
func (f Floatingtime) CopyToByteStream(e Endian) []byte {
	b := make([]byte, 8)
	bits := math.Float64bits(f.Value)
	if e == Big {
		for i := 0; i < 8; i++ {
			b[i] = byte(bits >> (56 - 8*i))
		}
	} else {
		for i := 0; i < 8; i++ {
			b[i] = byte(bits >> (8 * i))
		}
	}
	return b
}

// CopyFromFloat64 sets f's value directly.
func (f *Floatingtime) CopyFromFloat64(v float64) {
	f.Value = v
}

// CopyToFloat64 returns f's raw value.
func (f Floatingtime) CopyToFloat64() float64 {
	return f.Value
}

// Values splits f's day count and fraction into a DateTimeValues, per
// spec §4.3. NaN and +/-Inf are treated as invalid and yield a
// DateTimeValues that fails validation, triggering the hex fallback;
// per spec §9 note 6, nanosecond-level precision beyond microseconds is
// not faithful to the underlying double's ~15-16 significant digits, and
// the low digits are implementation-sensitive.
func (f Floatingtime) Values() DateTimeValues {
	if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
		return DateTimeValues{Month: 0}
	}

	days := int64(math.Floor(f.Value))
	fraction := f.Value - math.Floor(f.Value)

	year, month, day := floatingTimeDaysToGregorian(days)

	totalNanos := int64(fraction * 86_400_000_000_000)
	secs := totalNanos / 1_000_000_000
	remainder := totalNanos % 1_000_000_000
	hours, minutes, seconds := secondsToClock(secs)

	return DateTimeValues{
		Year:         uint16(year),
		Month:        uint8(month),
		Day:          uint8(day),
		Hours:        uint8(hours),
		Minutes:      uint8(minutes),
		Seconds:      uint8(seconds),
		MilliSeconds: uint16(remainder / 1_000_000 % 1000),
		MicroSeconds: uint16(remainder / 1_000 % 1000),
		NanoSeconds:  uint16(remainder % 1000),
	}
}

func (f Floatingtime) fallbackHex() string {
	return hexFallbackSingle(math.Float64bits(f.Value), 16)
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// f under flags and format, falling back to the hex-fallback width (21
// code units including NUL) when f's value is NaN, infinite, or its
// derived fields do not otherwise validate.
func (f Floatingtime) GetStringSize(flags Flags, format FormatType) (int, error) {
	size, err := GetStringSize(flags, format)
	if err != nil {
		return 0, err
	}
	if f.Values().valid() {
		return size, nil
	}
	if fallback := len(f.fallbackHex()) + 1; fallback > size {
		return fallback, nil
	}
	return size, nil
}

// FloatingtimeCopyToStringWithIndex renders f into buf[*idx:], advancing
// *idx, falling back to the hex representation of the raw double bits if
// f's value does not validate.
func FloatingtimeCopyToStringWithIndex[T codeUnit](f Floatingtime, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return renderOrFallback(buf, idx, flags, format, f.Values(), f.fallbackHex(), sink, "Floatingtime.CopyToStringWithIndex")
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered (or hex-fallback) text as a string.
func (f Floatingtime) Render(flags Flags, format FormatType) (string, error) {
	return renderToString(flags, format, f.Values(), f.fallbackHex())
}
