package binstamp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatingtimeScenario8(t *testing.T) {
	var f Floatingtime
	b := []byte{0x61, 0x0b, 0xb6, 0x60, 0x8f, 0x04, 0xe5, 0x40}
	require.NoError(t, f.CopyFromByteStream(b, Little))

	s, err := f.Render(DateTime|NanoSeconds, CTIME)
	require.NoError(t, err)
	require.Equal(t, "Nov 05, 2017 11:32:00.000000181", s)
}

func TestFloatingtimeTruncatesNotRounds(t *testing.T) {
	// Scenario 8's nanosecond digits are exactly 181: the fractional-day
	// conversion truncates rather than rounds, and a rounding
	// implementation would instead produce 182 here.
	var f Floatingtime
	b := []byte{0x61, 0x0b, 0xb6, 0x60, 0x8f, 0x04, 0xe5, 0x40}
	require.NoError(t, f.CopyFromByteStream(b, Little))

	require.Equal(t, uint16(181), f.Values().NanoSeconds)
}

func TestFloatingtimeNaNAndInfAreInvalid(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		f := Floatingtime{Value: v}
		require.False(t, f.Values().valid())

		s, err := f.Render(DateTime, CTIME)
		require.NoError(t, err)
		require.Regexp(t, `^\(0x[0-9a-f]{16}\)$`, s)
	}
}

func TestFloatingtimeByteStreamRoundTrip(t *testing.T) {
	f := Floatingtime{Value: 43044.5}
	for _, e := range []Endian{Big, Little} {
		b := f.CopyToByteStream(e)
		var g Floatingtime
		require.NoError(t, g.CopyFromByteStream(b, e))
		require.Equal(t, f.Value, g.Value)
	}
}

func TestFloatingtimeCopyFromByteStreamErrors(t *testing.T) {
	var f Floatingtime
	require.Error(t, f.CopyFromByteStream(make([]byte, 4), Little))
	require.Error(t, f.CopyFromByteStream(make([]byte, 8), Endian('X')))
}
