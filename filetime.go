package binstamp

// Filetime is the Microsoft FILETIME: a 64-bit count of 100-nanosecond
// ticks since 1601-01-01T00:00:00Z, stored as two 32-bit halves so that
// the wire layout's endian-dependent half ordering (spec §6) is preserved
// verbatim even for values that fail to validate.
type Filetime struct {
	Lower uint32
	Upper uint32
}

// NewFiletime allocates a zero-initialized Filetime via alloc (or
// DefaultAllocator if nil).
func NewFiletime(alloc Allocator) (*Filetime, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(8); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "Filetime.Initialize", err)
	}
	return &Filetime{}, nil
}

// CopyFromByteStream unpacks 8 bytes of b into f's Lower/Upper halves per
// the wire layout in spec §6: little-endian stores lower then upper, each
// little-endian; big-endian reverses both halves and their order.
func (f *Filetime) CopyFromByteStream(b []byte, e Endian) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "Filetime.CopyFromByteStream: endian")
	}
	if len(b) < 8 {
		return NewError(DomainArguments, CodeValueTooSmall, "Filetime.CopyFromByteStream")
	}
	f.Lower, f.Upper = readLowerUpper(b, e)
	return nil
}

// CopyToByteStream packs f into 8 bytes using the given byte order.
func (f Filetime) CopyToByteStream(e Endian) []byte {
	b := make([]byte, 8)
	putLowerUpper(b, e, f.Lower, f.Upper)
	return b
}

// CopyFromInt sets f from a 64-bit tick count.
func (f *Filetime) CopyFromInt(ticks uint64) {
	f.Lower = uint32(ticks)
	f.Upper = uint32(ticks >> 32)
}

// CopyToInt returns f's 64-bit tick count.
func (f Filetime) CopyToInt() uint64 {
	return uint64(f.Upper)<<32 | uint64(f.Lower)
}

// Add returns the Filetime representing f's tick count plus d's. Unlike
// the source this package was distilled from, which added Upper and
// Lower component-wise with no carry from Lower into Upper (almost
// certainly a bug, per spec §9 note 1), this performs the full 64-bit
// addition. If the sum overflows 64 bits, the result is zero;
// AddChecked reports the overflow.
func (f Filetime) Add(d Filetime) Filetime {
	sum, _ := addUint64(f.CopyToInt(), d.CopyToInt())
	var out Filetime
	out.CopyFromInt(sum)
	return out
}

// AddChecked is Add, but also reports whether the 64-bit tick count
// overflowed.
func (f Filetime) AddChecked(d Filetime) (Filetime, bool) {
	sum, overflows := addUint64(f.CopyToInt(), d.CopyToInt())
	var out Filetime
	out.CopyFromInt(sum)
	return out, overflows
}

// Values converts f's tick count into a DateTimeValues by unwinding the
// epoch from 1601-01-01, per spec §4.3 and §4.4.
func (f Filetime) Values() DateTimeValues {
	ticks := f.CopyToInt()

	const ticksPerSecond = 10_000_000
	secs := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond

	days := int64(secs / 86400)
	intraday := int64(secs % 86400)

	year, month, day := epochUnwind(1601, days)
	hours, minutes, seconds := secondsToClock(intraday)

	return DateTimeValues{
		Year:         uint16(year),
		Month:        uint8(month),
		Day:          uint8(day),
		Hours:        uint8(hours),
		Minutes:      uint8(minutes),
		Seconds:      uint8(seconds),
		MilliSeconds: uint16(rem / 10_000 % 1000),
		MicroSeconds: uint16(rem / 10 % 1000),
		NanoSeconds:  uint16((rem % 10) * 100),
	}
}

func (f Filetime) fallbackHex() string {
	return hexFallbackPair(f.Upper, f.Lower, 8)
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// f under flags and format, falling back to the hex-fallback width (24
// code units including NUL) when f's fields do not validate.
func (f Filetime) GetStringSize(flags Flags, format FormatType) (int, error) {
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

// FiletimeCopyToStringWithIndex renders f into buf[*idx:], advancing
// *idx, falling back to the hex representation if f's fields do not
// validate.
func FiletimeCopyToStringWithIndex[T codeUnit](f Filetime, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return renderOrFallback(buf, idx, flags, format, f.Values(), f.fallbackHex(), sink, "Filetime.CopyToStringWithIndex")
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered (or hex-fallback) text as a string.
func (f Filetime) Render(flags Flags, format FormatType) (string, error) {
	return renderToString(flags, format, f.Values(), f.fallbackHex())
}
