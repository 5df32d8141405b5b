package xdfstream

import (
	"errors"
	"fmt"

	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/section"
	"github.com/arloliu/xdfgo/xmltree"
)

// Parse decodes a complete XDF byte stream into a File.
//
// On a malformed or truncated input, Parse returns the longest prefix of
// streams it could reconstruct together with the error that stopped it —
// an empty Streams slice if nothing was recoverable. The one exception is
// input that does not start with the magic number: Parse then returns a nil
// File and ErrNoMagicNumber. A chunk truncated by the end of the input is
// also logged as a warning. Stream-level anomalies
// that spec.md tolerates (missing footer, a footer with no matching header)
// are logged through the package logger instead of aborting the parse.
func Parse(data []byte) (*File, error) {
	n, err := section.ReadMagic(data)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	var fileHeaderXML *xmltree.Element
	var version float64
	haveFileHeader := false

	headers := map[uint32]*chunk.HeaderInfo{}
	accums := map[uint32]*streamAccum{}
	order := make([]uint32, 0, 4)

	var parseErr error

loop:
	for len(data) > 0 {
		raw, consumed, err := chunk.ReadRaw(data)
		if err != nil {
			parseErr = err
			break loop
		}
		data = data[consumed:]

		if !haveFileHeader && raw.Tag != section.FileHeader {
			parseErr = fmt.Errorf("%w", errs.ErrMissingFileHeader)
			break loop
		}

		switch raw.Tag {
		case section.FileHeader:
			if haveFileHeader {
				parseErr = fmt.Errorf("%w", errs.ErrMultipleFileHeaders)
				break loop
			}

			xml, v, err := chunk.ParseFileHeader(raw.Payload)
			if err != nil {
				parseErr = err
				break loop
			}

			fileHeaderXML, version, haveFileHeader = xml, v, true

		case section.StreamHeader:
			info, err := chunk.ParseStreamHeader(raw.Payload)
			if err != nil {
				parseErr = err
				break loop
			}

			if _, exists := headers[info.StreamID]; exists {
				parseErr = fmt.Errorf("%w: %d", errs.ErrDuplicateStreamHeader, info.StreamID)
				break loop
			}

			headers[info.StreamID] = info
			accums[info.StreamID] = &streamAccum{header: info}
			order = append(order, info.StreamID)

		case section.Samples:
			streamID, samples, err := chunk.ParseSamples(raw.Payload, headers)
			if err != nil {
				parseErr = err
				break loop
			}

			accums[streamID].samples = append(accums[streamID].samples, samples...)

		case section.ClockOffset:
			entry, err := chunk.ParseClockOffset(raw.Payload)
			if err != nil {
				parseErr = err
				break loop
			}

			acc, ok := accums[entry.StreamID]
			if !ok {
				parseErr = fmt.Errorf("%w: %d", errs.ErrMissingStreamHeader, entry.StreamID)
				break loop
			}

			acc.offsets = append(acc.offsets, entry)

		case section.Boundary:
			if err := chunk.ParseBoundary(raw.Payload); err != nil {
				parseErr = err
				break loop
			}

		case section.StreamFooter:
			info, err := chunk.ParseStreamFooter(raw.Payload)
			if err != nil {
				parseErr = err
				break loop
			}

			acc, ok := accums[info.StreamID]
			if !ok {
				logger.Warn("stream footer references unknown stream header", "stream_id", info.StreamID)
				continue loop
			}

			if acc.footer != nil {
				parseErr = fmt.Errorf("%w: %d", errs.ErrDuplicateStreamFooter, info.StreamID)
				break loop
			}

			acc.footer = info
		}
	}

	if !haveFileHeader && parseErr == nil {
		parseErr = fmt.Errorf("%w", errs.ErrMissingFileHeader)
	}

	if errors.Is(parseErr, errs.ErrUnexpectedEOF) {
		logger.Warn("file truncated mid-chunk, returning partial result", "error", parseErr)
	}

	file := &File{Version: version, HeaderXML: fileHeaderXML}
	for _, id := range order {
		file.Streams = append(file.Streams, buildStream(id, accums[id]))
	}

	return file, parseErr
}
