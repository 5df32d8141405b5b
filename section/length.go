package section

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/xdfgo/errs"
)

// EncodeLength appends the XDF length codec encoding of n to dst: one count
// byte (1, 4, or 8 — the narrowest width that fits n) followed by that many
// little-endian bytes.
func EncodeLength(dst []byte, n uint64) []byte {
	switch {
	case n <= math.MaxUint8:
		dst = append(dst, 1)
		return append(dst, byte(n))
	case n <= math.MaxUint32:
		dst = append(dst, 4)
		return binary.LittleEndian.AppendUint32(dst, uint32(n))
	default:
		dst = append(dst, 8)
		return binary.LittleEndian.AppendUint64(dst, n)
	}
}

// DecodeLength reads a length codec value from the front of data and returns
// the decoded value plus the number of bytes consumed (1 + N).
func DecodeLength(data []byte) (value uint64, consumed int, err error) {
	if len(data) < 1 {
		return 0, 0, fmt.Errorf("%w: length codec count byte", errs.ErrUnexpectedEOF)
	}

	n := int(data[0])
	switch n {
	case 1:
		if len(data) < 2 {
			return 0, 0, fmt.Errorf("%w: 1-byte length value", errs.ErrUnexpectedEOF)
		}
		return uint64(data[1]), 2, nil
	case 4:
		if len(data) < 5 {
			return 0, 0, fmt.Errorf("%w: 4-byte length value", errs.ErrUnexpectedEOF)
		}
		return uint64(binary.LittleEndian.Uint32(data[1:5])), 5, nil
	case 8:
		if len(data) < 9 {
			return 0, 0, fmt.Errorf("%w: 8-byte length value", errs.ErrUnexpectedEOF)
		}
		v := binary.LittleEndian.Uint64(data[1:9])
		if v > math.MaxInt {
			return 0, 0, fmt.Errorf("%w: %d exceeds host address width", errs.ErrLengthOverflow, v)
		}
		return v, 9, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", errs.ErrInvalidNumCountBytes, n)
	}
}
