package binstamp

// FatDateTime is the 4-byte packed date+time used by the FAT filesystem:
// a 16-bit date word (years-since-1980, month, day) and a 16-bit time word
// (hours, minutes, 2-second seconds), both in the same byte order.
type FatDateTime struct {
	Date uint16
	Time uint16
}

// NewFatDateTime allocates a zero-initialized FatDateTime via alloc (or
// DefaultAllocator if nil), reporting Memory/Insufficient if allocation
// fails.
func NewFatDateTime(alloc Allocator) (*FatDateTime, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(4); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "FatDateTime.Initialize", err)
	}
	return &FatDateTime{}, nil
}

// CopyFromByteStream unpacks 4 bytes of b, starting at offset 0, into f
// per the given byte order.
func (f *FatDateTime) CopyFromByteStream(b []byte, e Endian) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "FatDateTime.CopyFromByteStream: endian")
	}
	if len(b) < 4 {
		return NewError(DomainArguments, CodeValueTooSmall, "FatDateTime.CopyFromByteStream")
	}
	f.Date = readUint16(b[0:2], e)
	f.Time = readUint16(b[2:4], e)
	return nil
}

// CopyToByteStream packs f into 4 bytes using the given byte order.
func (f FatDateTime) CopyToByteStream(e Endian) []byte {
	b := make([]byte, 4)
	putUint16(b[0:2], e, f.Date)
	putUint16(b[2:4], e, f.Time)
	return b
}

// CopyFromInt sets f's Date and Time words directly from a packed
// uint32, with Date in the high 16 bits and Time in the low 16 bits,
// matching the big-endian byte-stream layout.
func (f *FatDateTime) CopyFromInt(v uint32) {
	f.Date = uint16(v >> 16)
	f.Time = uint16(v)
}

// CopyToInt returns f packed into a uint32, Date in the high 16 bits and
// Time in the low 16 bits.
func (f FatDateTime) CopyToInt() uint32 {
	return uint32(f.Date)<<16 | uint32(f.Time)
}

// Values extracts f's bit-packed fields into a DateTimeValues, per spec
// §3's FatDateTime bit layout. The result is not guaranteed to validate:
// a date/time word decoded under the wrong byte order commonly yields an
// out-of-range month or day.
func (f FatDateTime) Values() DateTimeValues {
	year := 1980 + int((f.Date>>9)&0x7f)
	month := (f.Date >> 5) & 0xf
	day := f.Date & 0x1f

	hours := (f.Time >> 11) & 0x1f
	minutes := (f.Time >> 5) & 0x3f
	seconds := (f.Time & 0x1f) * 2

	return DateTimeValues{
		Year:    uint16(year),
		Month:   uint8(month),
		Day:     uint8(day),
		Hours:   uint8(hours),
		Minutes: uint8(minutes),
		Seconds: uint8(seconds),
	}
}

func (f FatDateTime) fallbackHex() string {
	return hexFallbackPair(uint32(f.Date), uint32(f.Time), 4)
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// f under flags and format, falling back to the hex-fallback width (16
// code units including NUL) when f's fields do not validate.
func (f FatDateTime) GetStringSize(flags Flags, format FormatType) (int, error) {
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

// FatDateTimeCopyToStringWithIndex renders f into buf[*idx:], advancing
// *idx, falling back to the hex representation if f's fields do not
// validate. T is the caller's code-unit width: byte, uint16, or uint32.
func FatDateTimeCopyToStringWithIndex[T codeUnit](f FatDateTime, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return renderOrFallback(buf, idx, flags, format, f.Values(), f.fallbackHex(), sink, "FatDateTime.CopyToStringWithIndex")
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered (or hex-fallback) text as a string.
func (f FatDateTime) Render(flags Flags, format FormatType) (string, error) {
	return renderToString(flags, format, f.Values(), f.fallbackHex())
}
