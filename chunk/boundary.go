package chunk

import "github.com/arloliu/xdfgo/section"

// ParseBoundary validates a Boundary chunk payload. Readers accept and
// discard boundary chunks; only the sentinel length is checked.
func ParseBoundary(payload []byte) error {
	return section.ReadBoundary(payload)
}

// EncodeBoundary returns the fixed boundary chunk payload.
func EncodeBoundary() []byte {
	return section.WriteBoundary(nil)
}
