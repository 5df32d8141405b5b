// Package section implements the wire-level framing primitives of the XDF
// container format: the magic number, the variable-width length codec, the
// 2-byte chunk tag codec, and the boundary-chunk UUID sentinel. Everything
// above the chunk package builds on these primitives; section itself knows
// nothing about chunk content.
package section

import (
	"fmt"

	"github.com/arloliu/xdfgo/errs"
)

// Magic is the fixed 4-byte sequence that opens every XDF file.
var Magic = [4]byte{'X', 'D', 'F', ':'}

// ReadMagic validates that data begins with the XDF magic number and returns
// the number of bytes consumed.
func ReadMagic(data []byte) (int, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != string(Magic[:]) {
		return 0, fmt.Errorf("%w", errs.ErrNoMagicNumber)
	}

	return len(Magic), nil
}

// WriteMagic appends the XDF magic number to dst.
func WriteMagic(dst []byte) []byte {
	return append(dst, Magic[:]...)
}
