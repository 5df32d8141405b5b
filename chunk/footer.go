package chunk

import (
	"fmt"

	"github.com/arloliu/xdfgo/endian"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/xmltree"
)

// ParseStreamFooter parses a StreamFooter chunk payload:
// <stream_id:4><xml>.
func ParseStreamFooter(payload []byte) (*FooterInfo, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("%w: stream footer stream_id", errs.ErrUnexpectedEOF)
	}

	engine := endian.GetLittleEndianEngine()
	streamID := engine.Uint32(payload[:4])

	xml, err := xmltree.Parse(payload[4:])
	if err != nil {
		return nil, err
	}

	return &FooterInfo{StreamID: streamID, XML: xml}, nil
}

// EncodeStreamFooter serializes a StreamFooter chunk payload for streamID
// with the given XML tree.
func EncodeStreamFooter(streamID uint32, xml *xmltree.Element) []byte {
	engine := endian.GetLittleEndianEngine()

	dst := make([]byte, 0, 4+64)
	dst = engine.AppendUint32(dst, streamID)
	dst = append(dst, xml.Bytes()...)

	return dst
}

// NewFooterXML builds a stream-footer <info> element carrying the writer's
// bookkeeping fields.
func NewFooterXML(firstTimestamp, lastTimestamp *float64, sampleCount uint64) *xmltree.Element {
	root := xmltree.New("info")

	if firstTimestamp != nil {
		root.AppendChild("first_timestamp", formatFloat(*firstTimestamp))
	}

	if lastTimestamp != nil {
		root.AppendChild("last_timestamp", formatFloat(*lastTimestamp))
	}

	root.AppendChild("sample_count", formatUint(sampleCount))

	return root
}
