package binstamp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFatDateTimeScenario1(t *testing.T) {
	var f FatDateTime
	require.NoError(t, f.CopyFromByteStream([]byte{0x0c, 0x3d, 0xd0, 0xa8}, Little))

	s, err := f.Render(DateTime, CTIME)
	require.NoError(t, err)
	require.Equal(t, "Aug 12, 2010 21:06:32", s)
}

func TestFatDateTimeScenario2HexFallback(t *testing.T) {
	var f FatDateTime
	require.NoError(t, f.CopyFromByteStream([]byte{0x0c, 0x3d, 0xd0, 0xa8}, Big))

	s, err := f.Render(DateTime, CTIME)
	require.NoError(t, err)
	require.Equal(t, "(0x0c3d 0xd0a8)", s)
	require.Len(t, s, 15)
}

func TestFatDateTimeRoundTrip(t *testing.T) {
	b := []byte{0x0c, 0x3d, 0xd0, 0xa8}
	for _, e := range []Endian{Big, Little} {
		var f FatDateTime
		require.NoError(t, f.CopyFromByteStream(b, e))
		packed := f.CopyToInt()

		var g FatDateTime
		g.CopyFromInt(packed)
		require.Equal(t, f, g)
		require.Equal(t, b, g.CopyToByteStream(e))
	}
}

func TestFatDateTimeCopyFromByteStreamErrors(t *testing.T) {
	var f FatDateTime
	err := f.CopyFromByteStream([]byte{0x01, 0x02}, Little)
	require.Error(t, err)

	err = f.CopyFromByteStream([]byte{0x01, 0x02, 0x03, 0x04}, Endian('X'))
	require.Error(t, err)
}

func TestFatDateTimeGetStringSizeFallback(t *testing.T) {
	var f FatDateTime
	require.NoError(t, f.CopyFromByteStream([]byte{0x0c, 0x3d, 0xd0, 0xa8}, Big))

	// The fallback width (16) is smaller than the DateTime/CTIME base
	// width (22), so GetStringSize reports the base width: it always
	// returns enough room for either outcome.
	size, err := f.GetStringSize(DateTime, CTIME)
	require.NoError(t, err)
	require.Equal(t, 22, size)

	size, err = f.GetStringSize(Date, CTIME)
	require.NoError(t, err)
	require.Equal(t, 16, size)
}

func TestNewFatDateTimeAllocationFailure(t *testing.T) {
	_, err := NewFatDateTime(FailingAllocator{})
	require.Error(t, err)

	f, err := NewFatDateTime(nil)
	require.NoError(t, err)
	require.NotNil(t, f)
}
