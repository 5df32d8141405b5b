package chunk

import (
	"fmt"

	"github.com/arloliu/xdfgo/endian"
	"github.com/arloliu/xdfgo/errs"
)

// ParseClockOffset parses a ClockOffset chunk payload:
// <stream_id:4><collection_time:f64 LE><offset_value:f64 LE>.
func ParseClockOffset(payload []byte) (ClockOffsetEntry, error) {
	if len(payload) < 20 {
		return ClockOffsetEntry{}, fmt.Errorf("%w: clock offset", errs.ErrUnexpectedEOF)
	}

	engine := endian.GetLittleEndianEngine()

	return ClockOffsetEntry{
		StreamID:       engine.Uint32(payload[:4]),
		CollectionTime: endian.Float64(engine, payload[4:12]),
		OffsetValue:    endian.Float64(engine, payload[12:20]),
	}, nil
}

// EncodeClockOffset serializes a ClockOffset chunk payload.
func EncodeClockOffset(entry ClockOffsetEntry) []byte {
	engine := endian.GetLittleEndianEngine()

	dst := make([]byte, 0, 20)
	dst = engine.AppendUint32(dst, entry.StreamID)
	dst = endian.AppendFloat64(engine, dst, entry.CollectionTime)
	dst = endian.AppendFloat64(engine, dst, entry.OffsetValue)

	return dst
}
