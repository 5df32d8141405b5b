package chunk

import (
	"fmt"
	"strconv"

	"github.com/arloliu/xdfgo/endian"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/format"
	"github.com/arloliu/xdfgo/xmltree"
)

// ParseStreamHeader parses a StreamHeader chunk payload:
// <stream_id:4 LE><xml>.
func ParseStreamHeader(payload []byte) (*HeaderInfo, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("%w: stream header stream_id", errs.ErrUnexpectedEOF)
	}

	engine := endian.GetLittleEndianEngine()
	streamID := engine.Uint32(payload[:4])

	xml, err := xmltree.Parse(payload[4:])
	if err != nil {
		return nil, err
	}

	channelCountText, err := xml.RequireChildText("channel_count")
	if err != nil {
		return nil, err
	}

	channelCount, err := strconv.ParseUint(channelCountText, 10, 32)
	if err != nil || channelCount < 1 {
		return nil, fmt.Errorf("%w: channel_count %q", errs.ErrInvalidChannelCount, channelCountText)
	}

	srateText, err := xml.RequireChildText("nominal_srate")
	if err != nil {
		return nil, err
	}

	srate, err := strconv.ParseFloat(srateText, 64)
	if err != nil || srate < 0 {
		return nil, fmt.Errorf("%w: nominal_srate %q", errs.ErrNegativeSRate, srateText)
	}

	var nominalSRate *float64
	if srate != 0 {
		s := srate
		nominalSRate = &s
	}

	formatText, err := xml.RequireChildText("channel_format")
	if err != nil {
		return nil, err
	}

	channelFormat, err := format.Parse(formatText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrBadElement, err)
	}

	return &HeaderInfo{
		StreamID:     streamID,
		ChannelCount: uint32(channelCount),
		NominalSRate: nominalSRate,
		Format:       channelFormat,
		Name:         xml.Child("name").Text(),
		Type:         xml.Child("type").Text(),
		XML:          xml,
	}, nil
}

// EncodeStreamHeader serializes a StreamHeader chunk payload for streamID
// with the given XML tree.
func EncodeStreamHeader(streamID uint32, xml *xmltree.Element) []byte {
	engine := endian.GetLittleEndianEngine()

	dst := make([]byte, 0, 4+64)
	dst = engine.AppendUint32(dst, streamID)
	dst = append(dst, xml.Bytes()...)

	return dst
}
