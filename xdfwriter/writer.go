package xdfwriter

import (
	"fmt"
	"strconv"

	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/section"
	"github.com/arloliu/xdfgo/xmltree"
)

// Writer owns the file's shared sink and hands out stream ids. A Writer is
// safe for concurrent use by multiple goroutines, each driving a different
// StreamWriter.
type Writer struct {
	sink         *sharedSink
	nextStreamID uint32
}

// WriteBoundary emits a Boundary chunk, the fixed resynchronization marker.
// The reader in xdfstream accepts and discards boundary chunks.
func (w *Writer) WriteBoundary() error {
	return w.sink.writeChunk(section.Boundary, chunk.EncodeBoundary())
}

// AddStream begins a new stream of channel value type F, with timestamp mode
// T (HasTimestamps or NoTimestamps). It is a package-level function rather
// than a method because Go forbids a method from introducing type
// parameters beyond those of its receiver.
func AddStream[F ValueType, T TimestampMode](w *Writer, info StreamInfo) (*StreamBuilder[F, T], error) {
	if info.ChannelCount < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidChannelCount, info.ChannelCount)
	}

	if info.NominalSRate < 0 {
		return nil, fmt.Errorf("%w: %v", errs.ErrNegativeSRate, info.NominalSRate)
	}

	w.sink.mu.Lock()
	id := w.nextStreamID
	w.nextStreamID++
	w.sink.mu.Unlock()

	xml := xmltree.New("info")
	xml.AppendChild("channel_count", strconv.FormatUint(uint64(info.ChannelCount), 10))
	xml.AppendChild("nominal_srate", strconv.FormatFloat(info.NominalSRate, 'f', -1, 64))
	xml.AppendChild("channel_format", formatOf[F]().String())

	var nominalSRate *float64
	if info.NominalSRate != 0 {
		v := info.NominalSRate
		nominalSRate = &v
	}

	sb := &StreamBuilder[F, T]{
		writer:       w,
		streamID:     id,
		channelCount: info.ChannelCount,
		nominalSRate: nominalSRate,
		xml:          xml,
	}

	if info.Name != "" {
		sb.Name(info.Name)
	}

	if info.Type != "" {
		sb.ContentType(info.Type)
	}

	return sb, nil
}
