package timestamp

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecode_Nil(t *testing.T) {
	got, err := New().Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecode_TimePassesThrough(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 3, 1, 10, 30, 0, 0, loc)

	got, err := New().Decode(in)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, in.Equal(*got))
	assert.Equal(t, loc, got.Location())
}

func TestDecode_Integers(t *testing.T) {
	want := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	inputs := []any{
		int(1700000000),
		int32(1700000000),
		int64(1700000000),
		uint64(1700000000),
		float64(1700000000),
		json.Number("1700000000"),
	}

	for _, in := range inputs {
		got, err := New().Decode(in)
		require.NoError(t, err, "input %T", in)
		require.NotNil(t, got)
		assert.True(t, want.Equal(*got), "input %T gave %v", in, got)
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestDecode_ZeroIsEpochWhenRequired(t *testing.T) {
	got, err := New().Decode(0)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), got.Unix())
}

func TestDecode_OutOfRange(t *testing.T) {
	inputs := []any{
		MaxUnix + 1,
		MinUnix - 1,
		int64(math.MaxInt64),
		uint64(math.MaxUint64),
		math.Inf(1),
		json.Number("1e300"),
	}

	for _, in := range inputs {
		got, err := New().Decode(in)
		assert.Nil(t, got)
		require.Error(t, err, "input %v", in)
		assert.True(t, errors.Is(err, ErrInvalidTimestamp))

		var invalid *InvalidTimestampError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, in, invalid.Value)
	}
}

func TestDecode_NaN(t *testing.T) {
	_, err := New().Decode(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestDecode_Bounds(t *testing.T) {
	got, err := New().Decode(MaxUnix)
	require.NoError(t, err)
	assert.Equal(t, 9999, got.Year())

	got, err = New().Decode(MinUnix)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Year())
}

func TestDecode_DateOnlyIsUTCMidnightWithWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	codec := New(WithLogger(zap.New(core)))

	got, err := codec.Decode(Date{Year: 2024, Month: time.February, Day: 29})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, time.UTC, got.Location())

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "2024-02-29", logs.All()[0].ContextMap()["value"])
}

func TestDecode_DateOnlyWithoutTZSupportIsSilent(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	codec := New(WithUseTZ(false), WithLogger(zap.New(core)))

	got, err := codec.Decode("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, 0, logs.Len())
}

func TestDecode_Strings(t *testing.T) {
	got, err := New().Decode("2024-05-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), got.UTC())

	_, err = New().Decode("yesterday")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestDecode_UnsupportedType(t *testing.T) {
	_, err := New().Decode([]int{1})
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestDecodeOptional_FalsyIsAbsent(t *testing.T) {
	for _, in := range []any{nil, 0, int64(0), float64(0), json.Number("0"), "", (*time.Time)(nil)} {
		got, err := New().DecodeOptional(in)
		require.NoError(t, err, "input %#v", in)
		assert.Nil(t, got, "input %#v must not become the epoch", in)
	}
}

func TestDecodeOptional_PresentValue(t *testing.T) {
	got, err := New().DecodeOptional(int64(1))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Unix())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, sec := range []int64{0, 1, 59, 86399, 1580000000, 1700000000, MaxUnix} {
		got, err := New().Decode(sec)
		require.NoError(t, err)
		assert.Equal(t, sec, Encode(*got))
	}
}
