package xdfwriter

import (
	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/section"
	"github.com/arloliu/xdfgo/xmltree"
)

// StreamBuilder accumulates one stream's header metadata before
// StartStream writes the StreamHeader chunk and hands back a StreamWriter.
type StreamBuilder[F ValueType, T TimestampMode] struct {
	writer       *Writer
	streamID     uint32
	channelCount uint32
	nominalSRate *float64
	xml          *xmltree.Element
	desc         *xmltree.Element
}

// Name sets the stream's <name>, overwriting any prior value.
func (sb *StreamBuilder[F, T]) Name(name string) *StreamBuilder[F, T] {
	sb.xml.SetChildTextOverwrite("name", name)
	return sb
}

// ContentType sets the stream's <type>, overwriting any prior value.
func (sb *StreamBuilder[F, T]) ContentType(contentType string) *StreamBuilder[F, T] {
	sb.xml.SetChildTextOverwrite("type", contentType)
	return sb
}

// AddMetadata sets a top-level <info> child, overwriting any prior value
// under the same key.
func (sb *StreamBuilder[F, T]) AddMetadata(key, value string) *StreamBuilder[F, T] {
	sb.xml.SetChildTextOverwrite(key, value)
	return sb
}

// AddDesc sets a child of the stream's <desc> subtree, overwriting any prior
// value under the same key. The <desc> subtree is grafted onto <info> when
// StartStream is called.
func (sb *StreamBuilder[F, T]) AddDesc(key, value string) *StreamBuilder[F, T] {
	sb.descElement().SetChildTextOverwrite(key, value)
	return sb
}

// MetadataElement returns the stream's root <info> element directly, for
// callers that need to attach a nested XML subtree rather than a single
// flat key/value pair — AddMetadata only covers the latter.
func (sb *StreamBuilder[F, T]) MetadataElement() *xmltree.Element {
	return sb.xml
}

// DescElement returns the stream's <desc> subtree directly, creating it
// empty if AddDesc has not been called yet, for callers that need to attach
// a nested XML subtree rather than a single flat key/value pair.
func (sb *StreamBuilder[F, T]) DescElement() *xmltree.Element {
	return sb.descElement()
}

func (sb *StreamBuilder[F, T]) descElement() *xmltree.Element {
	if sb.desc == nil {
		sb.desc = xmltree.New("desc")
	}

	return sb.desc
}

// StartStream writes the StreamHeader chunk and returns a StreamWriter ready
// to accept samples.
func (sb *StreamBuilder[F, T]) StartStream() (*StreamWriter[F, T], error) {
	if sb.desc != nil {
		sb.xml.AppendElement(sb.desc)
	}

	payload := chunk.EncodeStreamHeader(sb.streamID, sb.xml)
	if err := sb.writer.sink.writeChunk(section.StreamHeader, payload); err != nil {
		return nil, err
	}

	return &StreamWriter[F, T]{
		sink:         sb.writer.sink,
		streamID:     sb.streamID,
		format:       formatOf[F](),
		channelCount: sb.channelCount,
		nominalSRate: sb.nominalSRate,
	}, nil
}
