package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/xdfgo/errs"
)

// Tag identifies the kind of chunk content that follows the length prefix.
type Tag uint16

const (
	FileHeader   Tag = 1
	StreamHeader Tag = 2
	Samples      Tag = 3
	ClockOffset  Tag = 4
	Boundary     Tag = 5
	StreamFooter Tag = 6
)

// String returns the tag's name, or "unknown" for an unrecognized value.
func (t Tag) String() string {
	switch t {
	case FileHeader:
		return "FileHeader"
	case StreamHeader:
		return "StreamHeader"
	case Samples:
		return "Samples"
	case ClockOffset:
		return "ClockOffset"
	case Boundary:
		return "Boundary"
	case StreamFooter:
		return "StreamFooter"
	default:
		return "unknown"
	}
}

// DecodeTag reads a 2-byte little-endian tag from the front of data.
func DecodeTag(data []byte) (Tag, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("%w: truncated tag", errs.ErrUnexpectedEOF)
	}

	tag := Tag(binary.LittleEndian.Uint16(data[:2]))
	switch tag {
	case FileHeader, StreamHeader, Samples, ClockOffset, Boundary, StreamFooter:
		return tag, nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidTag, tag)
	}
}

// AppendTag appends t's 2-byte little-endian encoding to dst.
func AppendTag(dst []byte, t Tag) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(t))
}
