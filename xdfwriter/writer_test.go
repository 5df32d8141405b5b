package xdfwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/xdfstream"
)

func TestWriter_MinimalRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().AddMetadata("recorder", "test-rig").Build(&buf)
	require.NoError(t, err)

	sb, err := AddStream[int16, HasTimestamps](w, StreamInfo{
		Name: "EEG", Type: "EEG", ChannelCount: 3, NominalSRate: 10,
	})
	require.NoError(t, err)

	sw, err := sb.Name("EEG").AddDesc("manufacturer", "Acme").StartStream()
	require.NoError(t, err)

	require.NoError(t, sw.WriteSamples([][]int16{
		{192, 255, 238},
		{1, 1, 1},
		{2, 2, 2},
	}, 5.1))

	require.NoError(t, sw.Close())
	require.NoError(t, w.WriteBoundary())

	file, err := xdfstream.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Streams, 1)

	s := file.Streams[0]
	require.Len(t, s.Samples, 3)
	assert.Equal(t, []int16{192, 255, 238}, s.Samples[0].Values.Int16)
	require.NotNil(t, s.Samples[0].Timestamp)
	assert.InDelta(t, 5.1, *s.Samples[0].Timestamp, 1e-9)
	require.NotNil(t, s.Samples[2].Timestamp)
	assert.InDelta(t, 5.3, *s.Samples[2].Timestamp, 1e-9)
	require.NotNil(t, s.FooterXML)

	count, err := s.FooterXML.RequireChildText("sample_count")
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}

func TestWriter_IrregularStreamNoTimestamps(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().Build(&buf)
	require.NoError(t, err)

	sb, err := AddStream[string, NoTimestamps](w, StreamInfo{ChannelCount: 1})
	require.NoError(t, err)

	sw, err := sb.StartStream()
	require.NoError(t, err)

	require.NoError(t, sw.WriteSamples([][]string{{"marker-a"}, {"marker-b"}}))
	require.NoError(t, sw.Close())

	file, err := xdfstream.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Streams, 1)
	assert.Equal(t, []string{"marker-a"}, file.Streams[0].Samples[0].Values.Strings)
	assert.Nil(t, file.Streams[0].Samples[0].Timestamp)
}

func TestWriter_WriteSamples_ChannelCountMismatch(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().Build(&buf)
	require.NoError(t, err)

	sb, err := AddStream[int8, NoTimestamps](w, StreamInfo{ChannelCount: 2})
	require.NoError(t, err)

	sw, err := sb.StartStream()
	require.NoError(t, err)

	err = sw.WriteSamples([][]int8{{1}})
	assert.ErrorIs(t, err, errs.ErrChannelCountMismatch)
}

func TestWriter_WriteSamples_WrongTimestampArity(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().Build(&buf)
	require.NoError(t, err)

	sbTimestamped, err := AddStream[int8, HasTimestamps](w, StreamInfo{ChannelCount: 1, NominalSRate: 1})
	require.NoError(t, err)
	swTimestamped, err := sbTimestamped.StartStream()
	require.NoError(t, err)
	assert.Error(t, swTimestamped.WriteSamples([][]int8{{1}}))

	sbPlain, err := AddStream[int8, NoTimestamps](w, StreamInfo{ChannelCount: 1})
	require.NoError(t, err)
	swPlain, err := sbPlain.StartStream()
	require.NoError(t, err)
	assert.Error(t, swPlain.WriteSamples([][]int8{{1}}, 1.0))
}

func TestStreamWriter_CloseTwice_ReturnsAlreadyClosed(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().Build(&buf)
	require.NoError(t, err)

	sb, err := AddStream[int8, NoTimestamps](w, StreamInfo{ChannelCount: 1})
	require.NoError(t, err)
	sw, err := sb.StartStream()
	require.NoError(t, err)

	require.NoError(t, sw.Close())
	assert.ErrorIs(t, sw.Close(), errs.ErrStreamAlreadyClosed)
}

func TestUseStream_FooterOnExit(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().Build(&buf)
	require.NoError(t, err)

	err = UseStream[int32, NoTimestamps](w, StreamInfo{ChannelCount: 2}, func(sw *StreamWriter[int32, NoTimestamps]) error {
		return sw.WriteSamples([][]int32{{1, 2}, {3, 4}})
	})
	require.NoError(t, err)

	file, err := xdfstream.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Streams, 1)
	require.NotNil(t, file.Streams[0].FooterXML)

	count, err := file.Streams[0].FooterXML.RequireChildText("sample_count")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestAddStream_InvalidChannelCount(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewBuilder().Build(&buf)
	require.NoError(t, err)

	_, err = AddStream[int8, NoTimestamps](w, StreamInfo{ChannelCount: 0})
	assert.ErrorIs(t, err, errs.ErrInvalidChannelCount)
}

func TestBuild_NilSink(t *testing.T) {
	_, err := NewBuilder().Build(nil)
	assert.ErrorIs(t, err, errs.ErrNilSink)
}
