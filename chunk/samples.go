package chunk

import (
	"fmt"

	"github.com/arloliu/xdfgo/endian"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/format"
	"github.com/arloliu/xdfgo/section"
)

// ParseSamples parses a Samples chunk payload:
// <stream_id:4><length-codec: num_samples><sample>*, looking up the
// decoding format and channel count for the referenced stream in headers.
func ParseSamples(payload []byte, headers map[uint32]*HeaderInfo) (uint32, []Sample, error) {
	if len(payload) < 4 {
		return 0, nil, fmt.Errorf("%w: samples stream_id", errs.ErrUnexpectedEOF)
	}

	engine := endian.GetLittleEndianEngine()
	streamID := engine.Uint32(payload[:4])
	rest := payload[4:]

	header, ok := headers[streamID]
	if !ok {
		return 0, nil, fmt.Errorf("%w: %d", errs.ErrMissingStreamHeader, streamID)
	}

	numSamples, consumed, err := section.DecodeLength(rest)
	if err != nil {
		return 0, nil, err
	}
	rest = rest[consumed:]

	samples := make([]Sample, 0, numSamples)
	for i := uint64(0); i < numSamples; i++ {
		sample, n, err := decodeSample(rest, int(header.ChannelCount), header.Format)
		if err != nil {
			return 0, nil, err
		}

		samples = append(samples, sample)
		rest = rest[n:]
	}

	return streamID, samples, nil
}

func decodeSample(data []byte, channelCount int, f format.Format) (Sample, int, error) {
	if len(data) < 1 {
		return Sample{}, 0, fmt.Errorf("%w: sample ts_flag", errs.ErrUnexpectedEOF)
	}

	engine := endian.GetLittleEndianEngine()
	offset := 1
	var timestamp *float64

	switch data[0] {
	case 0:
		// no timestamp
	case 8:
		if len(data) < 9 {
			return Sample{}, 0, fmt.Errorf("%w: sample timestamp", errs.ErrUnexpectedEOF)
		}
		ts := endian.Float64(engine, data[1:9])
		timestamp = &ts
		offset = 9
	default:
		return Sample{}, 0, fmt.Errorf("%w: ts_flag=%d", errs.ErrInvalidSample, data[0])
	}

	values, n, err := decodeValues(data[offset:], channelCount, f)
	if err != nil {
		return Sample{}, 0, err
	}

	return Sample{Timestamp: timestamp, Values: values}, offset + n, nil
}

func decodeValues(data []byte, channelCount int, f format.Format) (Values, int, error) {
	engine := endian.GetLittleEndianEngine()
	values := Values{Format: f}

	width, fixed := f.ByteWidth()
	if fixed {
		if len(data) < width*channelCount {
			return Values{}, 0, fmt.Errorf("%w: sample values", errs.ErrUnexpectedEOF)
		}
	}

	switch f {
	case format.Int8:
		values.Int8 = make([]int8, channelCount)
		for i := 0; i < channelCount; i++ {
			values.Int8[i] = int8(data[i])
		}

		return values, channelCount, nil

	case format.Int16:
		values.Int16 = make([]int16, channelCount)
		for i := 0; i < channelCount; i++ {
			values.Int16[i] = int16(engine.Uint16(data[i*2 : i*2+2]))
		}

		return values, channelCount * 2, nil

	case format.Int32:
		values.Int32 = make([]int32, channelCount)
		for i := 0; i < channelCount; i++ {
			values.Int32[i] = int32(engine.Uint32(data[i*4 : i*4+4]))
		}

		return values, channelCount * 4, nil

	case format.Int64:
		values.Int64 = make([]int64, channelCount)
		for i := 0; i < channelCount; i++ {
			values.Int64[i] = int64(engine.Uint64(data[i*8 : i*8+8]))
		}

		return values, channelCount * 8, nil

	case format.Float32:
		values.Float32 = make([]float32, channelCount)
		for i := 0; i < channelCount; i++ {
			values.Float32[i] = endian.Float32(engine, data[i*4 : i*4+4])
		}

		return values, channelCount * 4, nil

	case format.Float64:
		values.Float64 = make([]float64, channelCount)
		for i := 0; i < channelCount; i++ {
			values.Float64[i] = endian.Float64(engine, data[i*8 : i*8+8])
		}

		return values, channelCount * 8, nil

	case format.String:
		values.Strings = make([]string, channelCount)
		consumed := 0
		for i := 0; i < channelCount; i++ {
			strLen, n, err := section.DecodeLength(data[consumed:])
			if err != nil {
				return Values{}, 0, err
			}
			consumed += n

			if uint64(len(data)-consumed) < strLen {
				return Values{}, 0, fmt.Errorf("%w: string value", errs.ErrUnexpectedEOF)
			}

			values.Strings[i] = string(data[consumed : consumed+int(strLen)])
			consumed += int(strLen)
		}

		return values, consumed, nil

	default:
		return Values{}, 0, fmt.Errorf("%w: unknown format %d", errs.ErrBadElement, f)
	}
}

// EncodeSamplesChunk serializes a Samples chunk payload for streamID.
func EncodeSamplesChunk(streamID uint32, samples []Sample) []byte {
	engine := endian.GetLittleEndianEngine()

	dst := make([]byte, 0, 16+len(samples)*8)
	dst = engine.AppendUint32(dst, streamID)
	dst = section.EncodeLength(dst, uint64(len(samples)))

	for _, s := range samples {
		dst = encodeSample(dst, s)
	}

	return dst
}

func encodeSample(dst []byte, s Sample) []byte {
	engine := endian.GetLittleEndianEngine()

	if s.Timestamp != nil {
		dst = append(dst, 8)
		dst = endian.AppendFloat64(engine, dst, *s.Timestamp)
	} else {
		dst = append(dst, 0)
	}

	return encodeValues(dst, s.Values)
}

func encodeValues(dst []byte, v Values) []byte {
	engine := endian.GetLittleEndianEngine()

	switch v.Format {
	case format.Int8:
		for _, x := range v.Int8 {
			dst = append(dst, byte(x))
		}
	case format.Int16:
		for _, x := range v.Int16 {
			dst = engine.AppendUint16(dst, uint16(x))
		}
	case format.Int32:
		for _, x := range v.Int32 {
			dst = engine.AppendUint32(dst, uint32(x))
		}
	case format.Int64:
		for _, x := range v.Int64 {
			dst = engine.AppendUint64(dst, uint64(x))
		}
	case format.Float32:
		for _, x := range v.Float32 {
			dst = endian.AppendFloat32(engine, dst, x)
		}
	case format.Float64:
		for _, x := range v.Float64 {
			dst = endian.AppendFloat64(engine, dst, x)
		}
	case format.String:
		for _, x := range v.Strings {
			dst = section.EncodeLength(dst, uint64(len(x)))
			dst = append(dst, x...)
		}
	}

	return dst
}
