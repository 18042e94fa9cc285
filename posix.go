package binstamp

// PosixValueType tags which of the six implemented POSIX timestamp
// variants a PosixTime holds: width (32 or 64 bit), signedness, and
// resolution (seconds, microseconds, or nanoseconds). Not every
// combination of width/signedness/resolution is implemented; this
// enumerates exactly the six spec §3 names.
type PosixValueType int

// The implemented POSIX timestamp variants.
const (
	Seconds32Unsigned PosixValueType = iota
	Seconds32Signed
	Seconds64Unsigned
	Seconds64Signed
	Microseconds64Signed
	Nanoseconds64Signed
)

func (t PosixValueType) is32Bit() bool {
	return t == Seconds32Unsigned || t == Seconds32Signed
}

func (t PosixValueType) is64Bit() bool {
	return !t.is32Bit()
}

func (t PosixValueType) isSigned() bool {
	return t == Seconds32Signed || t == Seconds64Signed || t == Microseconds64Signed || t == Nanoseconds64Signed
}

func (t PosixValueType) valid() bool {
	return t >= Seconds32Unsigned && t <= Nanoseconds64Signed
}

// sentinel32 and sentinel64 are the reserved bit patterns (INT32_MIN and
// INT64_MIN) that denote an "invalid" timestamp on signed variants, per
// spec §3 and the testable property in §8.
const (
	sentinel32 = uint32(0x80000000)
	sentinel64 = uint64(0x8000000000000000)
)

// PosixTime is a tagged POSIX timestamp: a raw 64-bit value interpreted
// according to ValueType. 32-bit variants are stored sign- or
// zero-extended into Timestamp; CopyToByteStream and the hex fallback
// truncate back to the original width.
type PosixTime struct {
	Timestamp uint64
	ValueType PosixValueType
}

// NewPosixTime allocates a zero-initialized PosixTime via alloc (or
// DefaultAllocator if nil).
func NewPosixTime(alloc Allocator) (*PosixTime, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	if _, err := alloc.Alloc(8); err != nil {
		return nil, WrapError(DomainMemory, CodeInsufficient, "PosixTime.Initialize", err)
	}
	return &PosixTime{}, nil
}

// CopyFromByteStream unpacks b (4 bytes for a 32-bit variant, 8 for a
// 64-bit variant) into p per vt and the given byte order. A signed
// variant whose wire bits equal the reserved sentinel fails with -1's
// Arguments/InvalidValue, per spec §8.
func (p *PosixTime) CopyFromByteStream(b []byte, e Endian, vt PosixValueType) error {
	if !e.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "PosixTime.CopyFromByteStream: endian")
	}
	if !vt.valid() {
		return NewError(DomainArguments, CodeUnsupportedValue, "PosixTime.CopyFromByteStream: value type")
	}

	if vt.is32Bit() {
		if len(b) < 4 {
			return NewError(DomainArguments, CodeValueTooSmall, "PosixTime.CopyFromByteStream")
		}
		raw := readUint32(b[0:4], e)
		if vt.isSigned() && raw == sentinel32 {
			return NewError(DomainArguments, CodeInvalidValue, "PosixTime.CopyFromByteStream: sentinel")
		}
		if vt.isSigned() {
			p.Timestamp = uint64(int64(int32(raw)))
		} else {
			p.Timestamp = uint64(raw)
		}
	} else {
		if len(b) < 8 {
			return NewError(DomainArguments, CodeValueTooSmall, "PosixTime.CopyFromByteStream")
		}
		raw := readUint64(b[0:8], e)
		if vt.isSigned() && raw == sentinel64 {
			return NewError(DomainArguments, CodeInvalidValue, "PosixTime.CopyFromByteStream: sentinel")
		}
		p.Timestamp = raw
	}

	p.ValueType = vt
	return nil
}

// CopyToByteStream packs p into 4 or 8 bytes (per p.ValueType's width)
// using the given byte order.
func (p PosixTime) CopyToByteStream(e Endian) []byte {
	if p.ValueType.is32Bit() {
		b := make([]byte, 4)
		putUint32(b, e, uint32(p.Timestamp))
		return b
	}
	b := make([]byte, 8)
	if e == Big {
		for i := 0; i < 8; i++ {
			b[i] = byte(p.Timestamp >> (56 - 8*i))
		}
	} else {
		for i := 0; i < 8; i++ {
			b[i] = byte(p.Timestamp >> (8 * i))
		}
	}
	return b
}

// CopyFromUint32 sets p from a raw 32-bit value under vt, which must be a
// 32-bit variant; any other vt fails with Runtime/UnsupportedValue, per
// spec §4.4.
func (p *PosixTime) CopyFromUint32(v uint32, vt PosixValueType) error {
	if !vt.valid() || !vt.is32Bit() {
		return NewError(DomainRuntime, CodeUnsupportedValue, "PosixTime.CopyFromUint32: value type")
	}
	if vt.isSigned() && v == sentinel32 {
		return NewError(DomainArguments, CodeInvalidValue, "PosixTime.CopyFromUint32: sentinel")
	}
	if vt.isSigned() {
		p.Timestamp = uint64(int64(int32(v)))
	} else {
		p.Timestamp = uint64(v)
	}
	p.ValueType = vt
	return nil
}

// CopyFromUint64 sets p from a raw 64-bit value under vt, which must be a
// 64-bit variant; any other vt fails with Runtime/UnsupportedValue.
func (p *PosixTime) CopyFromUint64(v uint64, vt PosixValueType) error {
	if !vt.valid() || !vt.is64Bit() {
		return NewError(DomainRuntime, CodeUnsupportedValue, "PosixTime.CopyFromUint64: value type")
	}
	if vt.isSigned() && v == sentinel64 {
		return NewError(DomainArguments, CodeInvalidValue, "PosixTime.CopyFromUint64: sentinel")
	}
	p.Timestamp = v
	p.ValueType = vt
	return nil
}

// CopyToUint32 returns p's value truncated to 32 bits along with its
// value type. It fails with Runtime/Unsupported if p currently holds a
// 64-bit variant, per spec §4.4.
func (p PosixTime) CopyToUint32() (uint32, PosixValueType, error) {
	if !p.ValueType.is32Bit() {
		return 0, 0, NewError(DomainRuntime, CodeUnsupportedValue, "PosixTime.CopyToUint32")
	}
	return uint32(p.Timestamp), p.ValueType, nil
}

// CopyToUint64 returns p's raw 64-bit value along with its value type. It
// fails with Runtime/Unsupported if p currently holds a 32-bit variant.
func (p PosixTime) CopyToUint64() (uint64, PosixValueType, error) {
	if !p.ValueType.is64Bit() {
		return 0, 0, NewError(DomainRuntime, CodeUnsupportedValue, "PosixTime.CopyToUint64")
	}
	return p.Timestamp, p.ValueType, nil
}

// Values converts p into a DateTimeValues by unwinding the epoch from
// 1970-01-01, per spec §4.3 and §4.4. Sub-second resolution is taken from
// the microsecond or nanosecond variants; seconds-resolution variants
// always yield zero sub-second fields.
func (p PosixTime) Values() DateTimeValues {
	var secs, subsecRemainder, divisor int64

	switch p.ValueType {
	case Seconds32Unsigned:
		secs = int64(uint32(p.Timestamp))
	case Seconds32Signed:
		secs = int64(int32(p.Timestamp))
	case Seconds64Unsigned:
		secs = int64(p.Timestamp)
	case Seconds64Signed:
		secs = int64(p.Timestamp)
	case Microseconds64Signed:
		divisor = 1_000_000
		secs, subsecRemainder = floorDivMod64(int64(p.Timestamp), divisor)
	case Nanoseconds64Signed:
		divisor = 1_000_000_000
		secs, subsecRemainder = floorDivMod64(int64(p.Timestamp), divisor)
	}

	days, intraday := floorDivMod64(secs, 86400)
	year, month, day := epochUnwind(1970, days)
	hours, minutes, seconds := secondsToClock(intraday)

	v := DateTimeValues{
		Year:    uint16(year),
		Month:   uint8(month),
		Day:     uint8(day),
		Hours:   uint8(hours),
		Minutes: uint8(minutes),
		Seconds: uint8(seconds),
	}

	switch divisor {
	case 1_000_000:
		v.MilliSeconds = uint16(subsecRemainder / 1000)
		v.MicroSeconds = uint16(subsecRemainder % 1000)
	case 1_000_000_000:
		v.MilliSeconds = uint16(subsecRemainder / 1_000_000 % 1000)
		v.MicroSeconds = uint16(subsecRemainder / 1_000 % 1000)
		v.NanoSeconds = uint16(subsecRemainder % 1000)
	}
	return v
}

func (p PosixTime) fallbackHex() string {
	if p.ValueType.is32Bit() {
		return hexFallbackSingle(uint64(uint32(p.Timestamp)), 8)
	}
	return hexFallbackSingle(p.Timestamp, 16)
}

// GetStringSize computes the buffer size CopyToStringWithIndex needs for
// p under flags and format, falling back to the hex-fallback width (13
// for a 32-bit variant, 21 for a 64-bit variant, including NUL) when p's
// fields do not validate.
func (p PosixTime) GetStringSize(flags Flags, format FormatType) (int, error) {
	size, err := GetStringSize(flags, format)
	if err != nil {
		return 0, err
	}
	if p.Values().valid() {
		return size, nil
	}
	if fallback := len(p.fallbackHex()) + 1; fallback > size {
		return fallback, nil
	}
	return size, nil
}

// PosixTimeCopyToStringWithIndex renders p into buf[*idx:], advancing
// *idx, falling back to the hex representation if p's fields do not
// validate.
func PosixTimeCopyToStringWithIndex[T codeUnit](p PosixTime, buf []T, idx *int, flags Flags, format FormatType, sink ErrorSink) int {
	return renderOrFallback(buf, idx, flags, format, p.Values(), p.fallbackHex(), sink, "PosixTime.CopyToStringWithIndex")
}

// Render is a convenience that allocates its own UTF-8 buffer and returns
// the rendered (or hex-fallback) text as a string.
func (p PosixTime) Render(flags Flags, format FormatType) (string, error) {
	return renderToString(flags, format, p.Values(), p.fallbackHex())
}
