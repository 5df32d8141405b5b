package xdfwriter

import (
	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/format"
)

// ValueType is the set of Go types a stream's channel values may hold. It
// mirrors format.Format one-for-one through formatOf.
type ValueType interface {
	int8 | int16 | int32 | int64 | float32 | float64 | string
}

// TimestampMode selects whether a StreamWriter's WriteSamples call accepts a
// first-sample timestamp. The mode is fixed by the type parameter; the
// number of timestamp arguments passed to WriteSamples is checked at run
// time. It exists only to be used as StreamWriter's second type parameter;
// callers never construct one.
type TimestampMode interface {
	isTimestampMode()
}

// HasTimestamps marks a stream whose samples carry timestamps, synthesized
// from an explicit first timestamp and the stream's nominal_srate.
type HasTimestamps struct{}

func (HasTimestamps) isTimestampMode() {}

// NoTimestamps marks an irregular-rate stream whose samples carry no
// timestamp at all.
type NoTimestamps struct{}

func (NoTimestamps) isTimestampMode() {}

// StreamInfo describes a stream at creation time, before any metadata
// chaining.
type StreamInfo struct {
	Name         string
	Type         string
	ChannelCount uint32
	// NominalSRate is the stream's nominal sampling rate in Hz, or 0 for an
	// irregular-rate stream.
	NominalSRate float64
}

// formatOf maps the Go value type F to its wire format.Format.
func formatOf[F ValueType]() format.Format {
	var zero F

	switch any(zero).(type) {
	case int8:
		return format.Int8
	case int16:
		return format.Int16
	case int32:
		return format.Int32
	case int64:
		return format.Int64
	case float32:
		return format.Float32
	case float64:
		return format.Float64
	case string:
		return format.String
	default:
		panic("xdfwriter: unsupported ValueType")
	}
}

// valuesFromRow converts one sample's channel row into a chunk.Values tagged
// union. row's concrete slice type always matches F's instantiation, so the
// type switch below is exhaustive and the default case is unreachable.
func valuesFromRow[F ValueType](row []F) chunk.Values {
	switch v := any(row).(type) {
	case []int8:
		return chunk.Values{Format: format.Int8, Int8: v}
	case []int16:
		return chunk.Values{Format: format.Int16, Int16: v}
	case []int32:
		return chunk.Values{Format: format.Int32, Int32: v}
	case []int64:
		return chunk.Values{Format: format.Int64, Int64: v}
	case []float32:
		return chunk.Values{Format: format.Float32, Float32: v}
	case []float64:
		return chunk.Values{Format: format.Float64, Float64: v}
	case []string:
		return chunk.Values{Format: format.String, Strings: v}
	default:
		panic("xdfwriter: unsupported ValueType")
	}
}
