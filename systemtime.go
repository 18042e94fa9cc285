package binstamp

// Systemtime is the Microsoft SYSTEMTIME: 8 consecutive 16-bit fields —
// year, month, day-of-week, day, hours, minutes, seconds, milliseconds —
// per spec §3. DayOfWeek (0-6, Sunday = 0) is decoded but ignored when
// rendering.
type Systemtime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hours        uint16
	Minutes      uint16
	Seconds      uint16
	Milliseconds uint16
}

// NewSystemtime allocates a zero-initialized Systemtime via alloc (or
// DefaultAllocator if nil).
func NewSystemtime(alloc Allocator) (*Systemtime, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(16); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "Systemtime.Initialize", err)
	}
	return &Systemtime{}, nil
}

// CopyFromByteStream unpacks 16 bytes of b, 8 consecutive 16-bit fields
// in the order year, month, day-of-week, day, hours, minutes, seconds,
// milliseconds, into f per the given byte order.
func (f *Systemtime) CopyFromByteStream(b []byte, e Endian) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "Systemtime.CopyFromByteStream: endian")
	}
	if len(b) < 16 {
		return NewError(DomainArguments, CodeValueTooSmall, "Systemtime.CopyFromByteStream")
	}
	f.Year = readUint16(b[0:2], e)
	f.Month = readUint16(b[2:4], e)
	f.DayOfWeek = readUint16(b[4:6], e)
	f.Day = readUint16(b[6:8], e)
	f.Hours = readUint16(b[8:10], e)
	f.Minutes = readUint16(b[10:12], e)
	f.Seconds = readUint16(b[12:14], e)
	f.Milliseconds = readUint16(b[14:16], e)
	return nil
}

// CopyToByteStream packs f into 16 bytes using the given byte order.
func (f Systemtime) CopyToByteStream(e Endian) []byte {
	b := make([]byte, 16)
	putUint16(b[0:2], e, f.Year)
	putUint16(b[2:4], e, f.Month)
	putUint16(b[4:6], e, f.DayOfWeek)
	putUint16(b[6:8], e, f.Day)
	putUint16(b[8:10], e, f.Hours)
	putUint16(b[10:12], e, f.Minutes)
	putUint16(b[12:14], e, f.Seconds)
	putUint16(b[14:16], e, f.Milliseconds)
	return b
}

// Values copies f's fields into a DateTimeValues; SYSTEMTIME already
// stores individual calendar fields, so no epoch arithmetic is involved.
// Fields that DateTimeValues holds in 8 bits are saturated at 255 rather
// than truncated, so an out-of-range value still fails validation.
func (f Systemtime) Values() DateTimeValues {
	narrow := func(v uint16) uint8 {
		if v > 0xff {
			return 0xff
		}
		return uint8(v)
	}
	return DateTimeValues{
		Year:         f.Year,
		Month:        narrow(f.Month),
		Day:          narrow(f.Day),
		Hours:        narrow(f.Hours),
		Minutes:      narrow(f.Minutes),
		Seconds:      narrow(f.Seconds),
		MilliSeconds: f.Milliseconds,
	}
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// f under flags and format. Unlike every other format in this package,
// SYSTEMTIME has no hex-fallback width in spec §4.4's table: it already
// stores individually-named calendar fields rather than an encoded
// timestamp, so there is no alternate raw representation to fall back to.
func (f Systemtime) GetStringSize(flags Flags, format FormatType) (int, error) {
	return GetStringSize(flags, format)
}

// SystemtimeCopyToStringWithIndex renders f into buf[*idx:], advancing
// *idx. Unlike the other format types, a Systemtime whose fields fail
// validation returns 0 and writes nothing, rather than falling back to a
// hex representation — see GetStringSize's doc comment.
func SystemtimeCopyToStringWithIndex[T codeUnit](f Systemtime, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return CopyToStringWithIndex(f.Values(), buf, idx, flags, format, sink)
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered text as a string, or an error if f's fields do not
// validate.
func (f Systemtime) Render(flags Flags, format FormatType) (string, error) {
	return CopyToString(f.Values(), flags, format)
}
