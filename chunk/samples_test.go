package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xdfgo/format"
)

func float64Ptr(v float64) *float64 { return &v }

func TestSamples_RoundTrip_Int16(t *testing.T) {
	headers := map[uint32]*HeaderInfo{
		0: {StreamID: 0, ChannelCount: 3, Format: format.Int16},
	}

	samples := []Sample{
		{Timestamp: float64Ptr(5.1), Values: Values{Format: format.Int16, Int16: []int16{192, 255, 238}}},
		{Timestamp: nil, Values: Values{Format: format.Int16, Int16: []int16{1, 2, 3}}},
	}

	payload := EncodeSamplesChunk(0, samples)
	streamID, decoded, err := ParseSamples(payload, headers)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), streamID)
	require.Len(t, decoded, 2)
	require.NotNil(t, decoded[0].Timestamp)
	assert.InDelta(t, 5.1, *decoded[0].Timestamp, 1e-12)
	assert.Equal(t, []int16{192, 255, 238}, decoded[0].Values.Int16)
	assert.Nil(t, decoded[1].Timestamp)
}

func TestSamples_RoundTrip_String_MultiChannel(t *testing.T) {
	headers := map[uint32]*HeaderInfo{
		5: {StreamID: 5, ChannelCount: 2, Format: format.String},
	}

	samples := []Sample{
		{Values: Values{Format: format.String, Strings: []string{"hello", "world"}}},
	}

	payload := EncodeSamplesChunk(5, samples)
	_, decoded, err := ParseSamples(payload, headers)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, []string{"hello", "world"}, decoded[0].Values.Strings)
}

func TestSamples_MissingStreamHeader(t *testing.T) {
	samples := []Sample{{Values: Values{Format: format.Int8, Int8: []int8{1}}}}
	payload := EncodeSamplesChunk(42, samples)

	_, _, err := ParseSamples(payload, map[uint32]*HeaderInfo{})
	require.Error(t, err)
}

func TestSamples_InvalidTimestampFlag(t *testing.T) {
	headers := map[uint32]*HeaderInfo{0: {ChannelCount: 1, Format: format.Int8}}
	payload := EncodeSamplesChunk(0, []Sample{{Values: Values{Format: format.Int8, Int8: []int8{1}}}})
	payload[6] = 3 // corrupt the ts_flag of the only sample

	_, _, err := ParseSamples(payload, headers)
	require.Error(t, err)
}

func TestSamples_AllNumericFormats(t *testing.T) {
	cases := []struct {
		name   string
		format format.Format
		values Values
	}{
		{"int8", format.Int8, Values{Format: format.Int8, Int8: []int8{-1, 2}}},
		{"int16", format.Int16, Values{Format: format.Int16, Int16: []int16{-10, 20}}},
		{"int32", format.Int32, Values{Format: format.Int32, Int32: []int32{-100, 200}}},
		{"int64", format.Int64, Values{Format: format.Int64, Int64: []int64{-1000, 2000}}},
		{"float32", format.Float32, Values{Format: format.Float32, Float32: []float32{1.5, -2.5}}},
		{"float64", format.Float64, Values{Format: format.Float64, Float64: []float64{1.25, -2.75}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			headers := map[uint32]*HeaderInfo{0: {ChannelCount: 2, Format: c.format}}
			payload := EncodeSamplesChunk(0, []Sample{{Values: c.values}})

			_, decoded, err := ParseSamples(payload, headers)
			require.NoError(t, err)
			require.Len(t, decoded, 1)
			assert.Equal(t, c.values, decoded[0].Values)
		})
	}
}
