package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]Format{
		"int8":      Int8,
		"INT16":     Int16,
		"Int32":     Int32,
		"int64":     Int64,
		"float32":   Float32,
		"float64":   Float64,
		"double64":  Float64,
		"  string ": String,
	}

	for input, want := range cases {
		got, err := Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParse_Unrecognized(t *testing.T) {
	_, err := Parse("complex128")
	require.Error(t, err)
}

func TestByteWidth(t *testing.T) {
	widths := map[Format]int{
		Int8:    1,
		Int16:   2,
		Int32:   4,
		Int64:   8,
		Float32: 4,
		Float64: 8,
	}

	for f, want := range widths {
		got, ok := f.ByteWidth()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := String.ByteWidth()
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "double64", Float64.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "unknown", Format(0).String())
}

func TestRoundTrip(t *testing.T) {
	for f := Int8; f <= String; f++ {
		got, err := Parse(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}
