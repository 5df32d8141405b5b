package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xdfgo/section"
)

func TestRaw_RoundTrip(t *testing.T) {
	payload := []byte("hello world")
	framed := WriteRaw(nil, section.Samples, payload)

	raw, consumed, err := ReadRaw(framed)
	require.NoError(t, err)
	assert.Equal(t, len(framed), consumed)
	assert.Equal(t, section.Samples, raw.Tag)
	assert.Equal(t, payload, raw.Payload)
}

func TestRaw_MultipleChunks(t *testing.T) {
	var buf []byte
	buf = WriteRaw(buf, section.FileHeader, []byte("a"))
	buf = WriteRaw(buf, section.Boundary, []byte("b"))

	raw1, n1, err := ReadRaw(buf)
	require.NoError(t, err)
	assert.Equal(t, section.FileHeader, raw1.Tag)

	raw2, n2, err := ReadRaw(buf[n1:])
	require.NoError(t, err)
	assert.Equal(t, section.Boundary, raw2.Tag)
	assert.Equal(t, len(buf), n1+n2)
}

func TestReadRaw_TruncatedBody(t *testing.T) {
	framed := WriteRaw(nil, section.Samples, []byte("hello"))
	_, _, err := ReadRaw(framed[:len(framed)-2])
	require.Error(t, err)
}
