package xdfwriter

import (
	"fmt"

	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/format"
	"github.com/arloliu/xdfgo/section"
)

// StreamWriter writes Samples chunks for one stream and, on Close, a
// StreamFooter summarizing the samples it wrote.
type StreamWriter[F ValueType, T TimestampMode] struct {
	sink         *sharedSink
	streamID     uint32
	format       format.Format
	channelCount uint32
	nominalSRate *float64

	closed         bool
	sampleCount    uint64
	firstTimestamp *float64
	lastTimestamp  *float64
}

// WriteSamples encodes and writes one Samples chunk for batch, a slice of
// per-sample channel rows each of length channelCount.
//
// For a HasTimestamps stream, firstTimestamp must carry exactly one value:
// the timestamp of batch[0]. Every later sample's effective timestamp is
// synthesized from it and the stream's nominal_srate for footer bookkeeping,
// but only batch[0] carries an explicit on-wire timestamp — exactly as a
// reader reconstructs the rest via synthesizeTimestamps. For a NoTimestamps
// stream, firstTimestamp must be empty.
func (sw *StreamWriter[F, T]) WriteSamples(batch [][]F, firstTimestamp ...float64) error {
	if sw.closed {
		return errs.ErrStreamAlreadyClosed
	}

	var zero T
	_, timestamped := any(zero).(HasTimestamps)

	switch {
	case timestamped && len(firstTimestamp) != 1:
		return fmt.Errorf("xdfwriter: stream %d requires exactly one firstTimestamp", sw.streamID)
	case !timestamped && len(firstTimestamp) != 0:
		return fmt.Errorf("xdfwriter: stream %d does not accept a firstTimestamp", sw.streamID)
	}

	for _, row := range batch {
		if uint32(len(row)) != sw.channelCount {
			return fmt.Errorf("%w: expected %d, got %d", errs.ErrChannelCountMismatch, sw.channelCount, len(row))
		}
	}

	samples := make([]chunk.Sample, len(batch))

	for i, row := range batch {
		values := valuesFromRow(row)

		var onWireTs *float64
		var effectiveTs *float64

		if timestamped {
			if i == 0 {
				t := firstTimestamp[0]
				onWireTs, effectiveTs = &t, &t
			} else if sw.nominalSRate != nil {
				t := firstTimestamp[0] + float64(i)/(*sw.nominalSRate)
				effectiveTs = &t
			}
		}

		samples[i] = chunk.Sample{Timestamp: onWireTs, Values: values}

		if effectiveTs != nil {
			if sw.firstTimestamp == nil {
				v := *effectiveTs
				sw.firstTimestamp = &v
			}

			v := *effectiveTs
			sw.lastTimestamp = &v
		}

		sw.sampleCount++
	}

	return sw.sink.writeChunk(section.Samples, chunk.EncodeSamplesChunk(sw.streamID, samples))
}

// WriteBoundary emits a Boundary chunk through the stream's shared sink.
func (sw *StreamWriter[F, T]) WriteBoundary() error {
	return sw.sink.writeChunk(section.Boundary, chunk.EncodeBoundary())
}

// Close writes the stream's StreamFooter chunk. Calling Close more than once
// returns ErrStreamAlreadyClosed; use UseStream when the caller wants
// guaranteed footer-on-exit without tracking this by hand.
func (sw *StreamWriter[F, T]) Close() error {
	if sw.closed {
		return errs.ErrStreamAlreadyClosed
	}

	sw.closed = true

	xml := chunk.NewFooterXML(sw.firstTimestamp, sw.lastTimestamp, sw.sampleCount)

	return sw.sink.writeChunk(section.StreamFooter, chunk.EncodeStreamFooter(sw.streamID, xml))
}
