// Package xdfstream reconstructs XDF chunk streams into an in-memory object
// model: one Stream per header, with timestamps synthesized from nominal
// sample rate where absent and corrected by piecewise-linear clock-offset
// interpolation, plus the top-level Parse entry point.
package xdfstream

import (
	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/format"
	"github.com/arloliu/xdfgo/xmltree"
)

// Sample is a decoded, reconstructed observation: a chunk.Sample whose
// timestamp may have been synthesized or clock-corrected by the
// reconstructor rather than read directly off the wire.
type Sample = chunk.Sample

// Values is the tagged-union channel payload of a Sample.
type Values = chunk.Values

// ClockOffset is one (collection_time, offset_value) point belonging to a
// stream's offset sequence.
type ClockOffset = chunk.ClockOffsetEntry

// Stream is a reconstructed XDF stream: its header metadata, its optional
// footer, and its time-ordered, clock-corrected samples.
type Stream struct {
	ID            uint32
	ChannelCount  uint32
	NominalSRate  *float64
	Format        format.Format
	Name          string
	Type          string
	HeaderXML     *xmltree.Element
	FooterXML     *xmltree.Element
	MeasuredSRate *float64
	Samples       []Sample
}

// File is the result of parsing a complete XDF byte stream.
type File struct {
	Version   float64
	HeaderXML *xmltree.Element
	Streams   []*Stream
}
