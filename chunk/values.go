package chunk

import (
	"github.com/arloliu/xdfgo/format"
	"github.com/arloliu/xdfgo/xmltree"
)

// Values is a tagged union of one channel_count-length homogeneous sequence,
// keyed by Format. Exactly one of the slice fields matching Format is
// populated; the others are nil. This mirrors a Rust-style sum type as a Go
// struct rather than an interface, since decoding is branch-free once the
// format is known and no dynamic dispatch is needed afterward.
type Values struct {
	Format  format.Format
	Int8    []int8
	Int16   []int16
	Int32   []int32
	Int64   []int64
	Float32 []float32
	Float64 []float64
	Strings []string
}

// Len returns the number of channel values held, regardless of format.
func (v Values) Len() int {
	switch v.Format {
	case format.Int8:
		return len(v.Int8)
	case format.Int16:
		return len(v.Int16)
	case format.Int32:
		return len(v.Int32)
	case format.Int64:
		return len(v.Int64)
	case format.Float32:
		return len(v.Float32)
	case format.Float64:
		return len(v.Float64)
	case format.String:
		return len(v.Strings)
	default:
		return 0
	}
}

// Sample is one observation across all channels of a stream, optionally
// timestamped. A nil Timestamp means the timestamp was not recoverable
// (no anchor yet, irregular stream) at the point this Sample was produced.
type Sample struct {
	Timestamp *float64
	Values    Values
}

// HeaderInfo is the decoded content of a StreamHeader chunk: the fields the
// codec needs to decode that stream's Samples chunks, plus the full XML
// tree for the caller.
type HeaderInfo struct {
	StreamID     uint32
	ChannelCount uint32
	// NominalSRate is nil when the wire value is 0 (irregular sampling).
	NominalSRate *float64
	Format       format.Format
	Name         string
	Type         string
	XML          *xmltree.Element
}

// FooterInfo is the decoded content of a StreamFooter chunk.
type FooterInfo struct {
	StreamID uint32
	XML      *xmltree.Element
}

// ClockOffsetEntry is one (collection_time, offset_value) point decoded from
// a ClockOffset chunk.
type ClockOffsetEntry struct {
	StreamID       uint32
	CollectionTime float64
	OffsetValue    float64
}
