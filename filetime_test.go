package binstamp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiletimeScenario3(t *testing.T) {
	var f Filetime
	b := []byte{0xce, 0x17, 0x0a, 0x3d, 0x62, 0x3a, 0xcb, 0x01}
	require.NoError(t, f.CopyFromByteStream(b, Little))

	s, err := f.Render(DateTime|NanoSeconds, CTIME)
	require.NoError(t, err)
	require.Equal(t, "Aug 12, 2010 21:06:31.546875000", s)
	require.Len(t, s, 31)
}

func TestFiletimeScenario4HexFallback(t *testing.T) {
	var f Filetime
	b := []byte{0xce, 0x17, 0x0a, 0x3d, 0x62, 0x3a, 0xcb, 0x01}
	require.NoError(t, f.CopyFromByteStream(b, Big))

	s, err := f.Render(DateTime, CTIME)
	require.NoError(t, err)
	require.Equal(t, "(0xce170a3d 0x623acb01)", s)
	require.Len(t, s, 23)
}

func TestFiletimeIntRoundTrip(t *testing.T) {
	var f Filetime
	f.CopyFromInt(0x01cb3a623d0a17ce)
	require.Equal(t, uint64(0x01cb3a623d0a17ce), f.CopyToInt())
}

func TestFiletimeAddCorrectsComponentwiseBug(t *testing.T) {
	var a, b Filetime
	a.CopyFromInt(0xffffffff)
	b.CopyFromInt(1)

	sum := a.Add(b)
	// A naive component-wise add with no carry would leave Upper at 0 and
	// Lower at 0 (0xffffffff + 1 wraps to 0 within the 32-bit half), losing
	// the carry into Upper entirely. The corrected 64-bit addition carries
	// properly: the tick count becomes exactly 0x100000000.
	require.Equal(t, uint64(0x100000000), sum.CopyToInt())
	require.Equal(t, uint32(1), sum.Upper)
	require.Equal(t, uint32(0), sum.Lower)
}

func TestFiletimeAddCheckedOverflow(t *testing.T) {
	var a, b Filetime
	a.CopyFromInt(^uint64(0))
	b.CopyFromInt(1)

	sum, overflowed := a.AddChecked(b)
	require.True(t, overflowed)
	require.Equal(t, uint64(0), sum.CopyToInt())

	sum, overflowed = a.AddChecked(Filetime{})
	require.False(t, overflowed)
	require.Equal(t, ^uint64(0), sum.CopyToInt())
}

func TestFiletimeCopyFromByteStreamErrors(t *testing.T) {
	var f Filetime
	require.Error(t, f.CopyFromByteStream(make([]byte, 4), Little))
	require.Error(t, f.CopyFromByteStream(make([]byte, 8), Endian('X')))
}
