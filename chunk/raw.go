// Package chunk implements the per-tag XDF chunk parsers and encoders: one
// parse/encode function pair for each of FileHeader, StreamHeader, Samples,
// ClockOffset, Boundary, and StreamFooter, plus the raw length+tag+payload
// framing that wraps all of them. It also owns the small value-model types
// (Values, Sample, HeaderInfo, FooterInfo, ClockOffsetEntry) that the
// reconstructor in xdfstream assembles into Streams.
package chunk

import (
	"fmt"

	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/section"
)

// Raw is one length-framed, tagged chunk as it appears on the wire, before
// its payload has been interpreted by a tag-specific parser.
type Raw struct {
	Tag     section.Tag
	Payload []byte
}

// ReadRaw reads one chunk from the front of data and returns it along with
// the number of bytes consumed.
func ReadRaw(data []byte) (Raw, int, error) {
	innerLen, lenConsumed, err := section.DecodeLength(data)
	if err != nil {
		return Raw{}, 0, err
	}

	rest := data[lenConsumed:]
	if uint64(len(rest)) < innerLen {
		return Raw{}, 0, fmt.Errorf("%w: chunk body", errs.ErrUnexpectedEOF)
	}

	body := rest[:innerLen]

	tag, err := section.DecodeTag(body)
	if err != nil {
		return Raw{}, 0, err
	}

	return Raw{Tag: tag, Payload: body[2:]}, lenConsumed + int(innerLen), nil
}

// WriteRaw appends a complete framed chunk (length codec + tag + payload) to
// dst.
func WriteRaw(dst []byte, tag section.Tag, payload []byte) []byte {
	innerLen := uint64(2 + len(payload))
	dst = section.EncodeLength(dst, innerLen)
	dst = section.AppendTag(dst, tag)
	dst = append(dst, payload...)

	return dst
}
