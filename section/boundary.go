package section

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arloliu/xdfgo/errs"
)

// BoundaryUUID is the fixed 16-byte sentinel written as the payload of every
// Boundary chunk. It carries no semantic content; writers emit it at coarse
// intervals purely to give readers a recognizable resynchronization point.
var BoundaryUUID = uuid.UUID{
	0x43, 0xA5, 0x46, 0xDC, 0xCB, 0xF5, 0x41, 0x0F,
	0xB3, 0x0E, 0xD5, 0x46, 0x73, 0x83, 0xCB, 0xE4,
}

// ReadBoundary validates that payload has the 16-byte length of the boundary
// sentinel. Readers accept and discard boundary chunks, so a mismatched payload is
// tolerated rather than rejected — only the length is load-bearing.
func ReadBoundary(payload []byte) error {
	if len(payload) != len(BoundaryUUID) {
		return fmt.Errorf("%w: boundary payload length %d", errs.ErrUnexpectedEOF, len(payload))
	}

	return nil
}

// WriteBoundary appends the boundary sentinel bytes to dst.
func WriteBoundary(dst []byte) []byte {
	b := BoundaryUUID
	return append(dst, b[:]...)
}
