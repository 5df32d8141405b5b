package xdfstream

import "github.com/arloliu/xdfgo/chunk"

// streamAccum accumulates everything parse.go has seen for one stream id,
// in on-disk order, before the reconstructor turns it into a Stream.
type streamAccum struct {
	header  *chunk.HeaderInfo
	footer  *chunk.FooterInfo
	samples []chunk.Sample
	offsets []ClockOffset
}

// buildStream reconstructs id's Stream from its accumulated chunks:
// timestamp synthesis from nominal_srate, clock-offset correction, and
// measured_srate computation.
func buildStream(id uint32, acc *streamAccum) *Stream {
	h := acc.header

	s := &Stream{
		ID:           id,
		ChannelCount: h.ChannelCount,
		NominalSRate: h.NominalSRate,
		Format:       h.Format,
		Name:         h.Name,
		Type:         h.Type,
		HeaderXML:    h.XML,
	}

	if acc.footer == nil {
		logger.Warn("stream has no footer, recording interrupted", "stream_id", id)
	} else {
		s.FooterXML = acc.footer.XML
	}

	s.Samples = synthesizeTimestamps(acc.samples, h.NominalSRate)

	if len(acc.offsets) > 0 {
		applyClockOffsets(s.Samples, acc.offsets)
	}

	s.MeasuredSRate = measuredSRate(s.Samples, h.NominalSRate)

	return s
}

// synthesizeTimestamps fills in missing timestamps for samples following a
// timestamped anchor, using nominal_srate to interpolate forward. A run
// with no prior anchor and no timestamp of its own is left nil rather than
// guessed.
func synthesizeTimestamps(samples []chunk.Sample, nominalSRate *float64) []chunk.Sample {
	out := make([]chunk.Sample, len(samples))

	var anchorIdx int
	var anchorTs float64
	haveAnchor := false

	for i, samp := range samples {
		var ts *float64

		switch {
		case samp.Timestamp != nil:
			anchorIdx = i
			anchorTs = *samp.Timestamp
			haveAnchor = true
			t := *samp.Timestamp
			ts = &t
		case haveAnchor && nominalSRate != nil:
			t := anchorTs + float64(i-anchorIdx)/ *nominalSRate
			ts = &t
		}

		out[i] = chunk.Sample{Timestamp: ts, Values: samp.Values}
	}

	return out
}

// applyClockOffsets corrects every timestamped sample's timestamp in place,
// regardless of whether the stream has a known nominal_srate.
func applyClockOffsets(samples []chunk.Sample, offsets []ClockOffset) {
	interp := newOffsetInterpolator(offsets)

	for i := range samples {
		if samples[i].Timestamp == nil {
			continue
		}

		corrected := interp.Correct(*samples[i].Timestamp)
		samples[i].Timestamp = &corrected
	}
}

// measuredSRate computes (last_ts - first_ts) / num_samples when
// nominal_srate is known and at least one sample carries a timestamp.
//
// The denominator is num_samples, not num_samples-1 — this matches the
// original implementation's definition rather than the more statistically
// conventional one; see the open-question resolution in DESIGN.md.
func measuredSRate(samples []chunk.Sample, nominalSRate *float64) *float64 {
	if nominalSRate == nil || len(samples) == 0 {
		return nil
	}

	var first, last *float64
	for i := range samples {
		if samples[i].Timestamp == nil {
			continue
		}

		if first == nil {
			first = samples[i].Timestamp
		}

		last = samples[i].Timestamp
	}

	if first == nil {
		return nil
	}

	v := (*last - *first) / float64(len(samples))

	return &v
}
