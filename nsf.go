package binstamp

// NsfTimedate is the Lotus NSF packed date/time: a 1/100-second
// time-of-day count (Lower) and an upper word (Upper) packing a 24-bit
// NSF Julian day number together with a UTC offset and DST flag, per
// spec §3.
type NsfTimedate struct {
	Lower uint32
	Upper uint32
}

// NewNsfTimedate allocates a zero-initialized NsfTimedate via alloc (or
// DefaultAllocator if nil).
func NewNsfTimedate(alloc Allocator) (*NsfTimedate, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(8); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "NsfTimedate.Initialize", err)
	}
	return &NsfTimedate{}, nil
}

// CopyFromByteStream unpacks 8 bytes of b into f's Lower/Upper words per
// the wire layout in spec §6, which NSF shares with Filetime:
// little-endian stores lower then upper, each little-endian; big-endian
// reverses both words and their order.
func (f *NsfTimedate) CopyFromByteStream(b []byte, e Endian) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "NsfTimedate.CopyFromByteStream: endian")
	}
	if len(b) < 8 {
		return NewError(DomainArguments, CodeValueTooSmall, "NsfTimedate.CopyFromByteStream")
	}
	f.Lower, f.Upper = readLowerUpper(b, e)
	return nil
}

// CopyToByteStream packs f into 8 bytes using the given byte order.
func (f NsfTimedate) CopyToByteStream(e Endian) []byte {
	b := make([]byte, 8)
	putLowerUpper(b, e, f.Lower, f.Upper)
	return b
}

// JulianDay returns the 24-bit NSF Julian day number packed into Upper.
func (f NsfTimedate) JulianDay() uint32 {
	return f.Upper & 0x00FFFFFF
}

// UTCOffset decodes, but does not apply, the UTC offset packed into
// Upper's bits 24-30: an hour count (0-15), a 15-minute quarter count
// (0-3), and a sign (true = positive). Per spec §9 note 3, the rendered
// time is always the stored local time; these accessors let a caller
// apply the offset itself.
func (f NsfTimedate) UTCOffset() (hours, quarterHours int, positive bool) {
	hours = int((f.Upper >> 24) & 0xF)
	quarterHours = int((f.Upper >> 28) & 0x3)
	positive = (f.Upper>>30)&0x1 == 1
	return
}

// DST reports the daylight-saving-time bit packed into Upper's bit 31. It
// is decoded but, per spec §9 note 3, never applied to the rendered time.
func (f NsfTimedate) DST() bool {
	return (f.Upper>>31)&0x1 == 1
}

// Values converts f's Julian day and hundredths-of-a-second count into a
// DateTimeValues, per spec §4.3's NSF Julian conversion algorithm.
func (f NsfTimedate) Values() DateTimeValues {
	year, month, day := julianDayToGregorian(int64(f.JulianDay()))

	hundredths := f.Lower
	secs := int64(hundredths / 100)
	hours, minutes, seconds := secondsToClock(secs % 86400)

	return DateTimeValues{
		Year:         uint16(year),
		Month:        uint8(month),
		Day:          uint8(day),
		Hours:        uint8(hours),
		Minutes:      uint8(minutes),
		Seconds:      uint8(seconds),
		MilliSeconds: uint16((hundredths % 100) * 10),
	}
}

func (f NsfTimedate) fallbackHex() string {
	return hexFallbackPair(f.Upper, f.Lower, 8)
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// f under flags and format, falling back to the hex-fallback width (24
// code units including NUL) when f's fields do not validate.
func (f NsfTimedate) GetStringSize(flags Flags, format FormatType) (int, error) {
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

// NsfTimedateCopyToStringWithIndex renders f into buf[*idx:], advancing
// *idx, falling back to the hex representation if f's fields do not
// validate.
func NsfTimedateCopyToStringWithIndex[T codeUnit](f NsfTimedate, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return renderOrFallback(buf, idx, flags, format, f.Values(), f.fallbackHex(), sink, "NsfTimedate.CopyToStringWithIndex")
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered (or hex-fallback) text as a string.
func (f NsfTimedate) Render(flags Flags, format FormatType) (string, error) {
	return renderToString(flags, format, f.Values(), f.fallbackHex())
}
