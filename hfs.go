package binstamp

// HfsTime is the Apple HFS/HFS+ timestamp: a 32-bit count of seconds
// since 1904-01-01T00:00:00 local time.
type HfsTime struct {
	Seconds uint32
}

// NewHfsTime allocates a zero-initialized HfsTime via alloc (or
// DefaultAllocator if nil).
func NewHfsTime(alloc Allocator) (*HfsTime, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(4); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "HfsTime.Initialize", err)
	}
	return &HfsTime{}, nil
}

// CopyFromByteStream unpacks 4 bytes of b into f's Seconds field per the
// given byte order.
func (f *HfsTime) CopyFromByteStream(b []byte, e Endian) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "HfsTime.CopyFromByteStream: endian")
	}
	if len(b) < 4 {
		return NewError(DomainArguments, CodeValueTooSmall, "HfsTime.CopyFromByteStream")
	}
	f.Seconds = readUint32(b[0:4], e)
	return nil
}

// CopyToByteStream packs f into 4 bytes using the given byte order.
func (f HfsTime) CopyToByteStream(e Endian) []byte {
	b := make([]byte, 4)
	putUint32(b, e, f.Seconds)
	return b
}

// CopyFromInt sets f's Seconds field directly.
func (f *HfsTime) CopyFromInt(v uint32) {
	f.Seconds = v
}

// CopyToInt returns f's Seconds field.
func (f HfsTime) CopyToInt() uint32 {
	return f.Seconds
}

// Values converts f's seconds-since-1904 count into a DateTimeValues by
// unwinding the epoch from 1904-01-01, per spec §4.3.
func (f HfsTime) Values() DateTimeValues {
	days := int64(f.Seconds / 86400)
	intraday := int64(f.Seconds % 86400)

	year, month, day := epochUnwind(1904, days)
	hours, minutes, seconds := secondsToClock(intraday)

	return DateTimeValues{
		Year:    uint16(year),
		Month:   uint8(month),
		Day:     uint8(day),
		Hours:   uint8(hours),
		Minutes: uint8(minutes),
		Seconds: uint8(seconds),
	}
}

func (f HfsTime) fallbackHex() string {
	return hexFallbackSingle(uint64(f.Seconds), 8)
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// f under flags and format, falling back to the hex-fallback width (13
// code units including NUL) when f's fields do not validate.
func (f HfsTime) GetStringSize(flags Flags, format FormatType) (int, error) {
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

// HfsTimeCopyToStringWithIndex renders f into buf[*idx:], advancing *idx,
// falling back to the hex representation if f's fields do not validate.
func HfsTimeCopyToStringWithIndex[T codeUnit](f HfsTime, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return renderOrFallback(buf, idx, flags, format, f.Values(), f.fallbackHex(), sink, "HfsTime.CopyToStringWithIndex")
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered (or hex-fallback) text as a string.
func (f HfsTime) Render(flags Flags, format FormatType) (string, error) {
	return renderToString(flags, format, f.Values(), f.fallbackHex())
}
