package binstamp

// Endian identifies the byte order a wire format was encoded in.
type Endian byte

// The two supported byte orders. Any other value is rejected by the
// decoders with an Arguments/UnsupportedValue error.
const (
	Big    Endian = 'b'
	Little Endian = 'l'
)

func (e Endian) valid() bool {
	return e == Big || e == Little
}

// readUint16 reads 2 bytes from b[0:2] in the given byte order.
func readUint16(b []byte, e Endian) uint16 {
	if e == Big {
		return uint16(b[0])<<8 | uint16(b[1])
	}
	return uint16(b[1])<<8 | uint16(b[0])
}

// readUint32 reads 4 bytes from b[0:4] in the given byte order.
func readUint32(b []byte, e Endian) uint32 {
	if e == Big {
		return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
}

// readUint64 reads 8 bytes from b[0:8] in the given byte order.
func readUint64(b []byte, e Endian) uint64 {
	if e == Big {
		return uint64(readUint32(b[0:4], Big))<<32 | uint64(readUint32(b[4:8], Big))
	}
	return uint64(readUint32(b[4:8], Little))<<32 | uint64(readUint32(b[0:4], Little))
}

// readLowerUpper reads the 8-byte lower/upper pair shared by FILETIME and
// NSF timedate. In little-endian encoding, the wire order is lower then
// upper, each read little-endian. In big-endian encoding, both 32-bit
// halves and their order are reversed: the wire order is upper then lower,
// each read big-endian.
func readLowerUpper(b []byte, e Endian) (lower, upper uint32) {
	if e == Big {
		return readUint32(b[4:8], Big), readUint32(b[0:4], Big)
	}
	return readUint32(b[0:4], Little), readUint32(b[4:8], Little)
}

// putLowerUpper is the inverse of readLowerUpper.
func putLowerUpper(b []byte, e Endian, lower, upper uint32) {
	if e == Big {
		putUint32(b[0:4], Big, upper)
		putUint32(b[4:8], Big, lower)
		return
	}
	putUint32(b[0:4], Little, lower)
	putUint32(b[4:8], Little, upper)
}

// putUint16 writes v into b[0:2] in the given byte order.
func putUint16(b []byte, e Endian, v uint16) {
	if e == Big {
		b[0] = byte(v >> 8)
		b[1] = byte(v)
		return
	}
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// putUint32 writes v into b[0:4] in the given byte order.
func putUint32(b []byte, e Endian, v uint32) {
	if e == Big {
		b[0] = byte(v >> 24)
		b[1] = byte(v >> 16)
		b[2] = byte(v >> 8)
		b[3] = byte(v)
		return
	}
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
