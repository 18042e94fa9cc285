package binstamp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosixTimeScenario6(t *testing.T) {
	var p PosixTime
	require.NoError(t, p.CopyFromUint32(0x4f649c7f, Seconds32Unsigned))

	s, err := p.Render(DateTime, CTIME)
	require.NoError(t, err)
	require.Equal(t, "Mar 17, 2012 14:15:27", s)

	var q PosixTime
	require.NoError(t, q.CopyFromUint64(0x1552235512b3a20e, Nanoseconds64Signed))

	s, err = q.Render(DateTime|NanoSeconds, ISO8601)
	require.NoError(t, err)
	require.Equal(t, "2018-09-07T14:07:51.179715086", s)
}

func TestPosixTimeSentinelsAlwaysFail(t *testing.T) {
	signedTypes := []PosixValueType{Seconds32Signed, Seconds64Signed, Microseconds64Signed, Nanoseconds64Signed}
	for _, vt := range signedTypes {
		t.Run("CopyFromUint", func(t *testing.T) {
			if vt.is32Bit() {
				var p PosixTime
				require.Error(t, p.CopyFromUint32(sentinel32, vt))
			} else {
				var p PosixTime
				require.Error(t, p.CopyFromUint64(sentinel64, vt))
			}
		})
	}

	var p PosixTime
	b32 := make([]byte, 4)
	putUint32(b32, Little, sentinel32)
	require.Error(t, p.CopyFromByteStream(b32, Little, Seconds32Signed))

	b64 := make([]byte, 8)
	for i := range b64 {
		b64[i] = 0
	}
	b64[0] = 0x80 // sentinel64 big-endian high byte
	require.Error(t, p.CopyFromByteStream(b64, Big, Seconds64Signed))
}

func TestPosixTimeSentinelIgnoredForUnsigned(t *testing.T) {
	var p PosixTime
	require.NoError(t, p.CopyFromUint32(sentinel32, Seconds32Unsigned))
	require.Equal(t, uint64(sentinel32), p.Timestamp)
}

func TestPosixTimeWidthMismatch(t *testing.T) {
	var p PosixTime
	require.Error(t, p.CopyFromUint32(1, Seconds64Signed))
	require.Error(t, p.CopyFromUint64(1, Seconds32Unsigned))

	require.NoError(t, p.CopyFromUint32(1, Seconds32Unsigned))
	_, _, err := p.CopyToUint64()
	require.Error(t, err)

	require.NoError(t, p.CopyFromUint64(1, Seconds64Unsigned))
	_, _, err = p.CopyToUint32()
	require.Error(t, err)
}

func TestPosixTimeValueTypeHelpers(t *testing.T) {
	require.True(t, Seconds32Unsigned.is32Bit())
	require.True(t, Seconds32Signed.is32Bit())
	require.True(t, Seconds64Unsigned.is64Bit())
	require.True(t, Microseconds64Signed.is64Bit())

	require.False(t, Seconds32Unsigned.isSigned())
	require.True(t, Seconds32Signed.isSigned())
	require.True(t, Nanoseconds64Signed.isSigned())

	require.True(t, Nanoseconds64Signed.valid())
	require.False(t, PosixValueType(99).valid())
}
