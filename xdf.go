// Package xdfgo reads and writes XDF (Extensible Data Format) files, the
// tagged-chunk container format used by LabRecorder and liblsl to multiplex
// several time series — each with its own sample rate, channel layout, and
// metadata — into one recording.
//
// This package provides convenient top-level wrappers around the section,
// chunk, xdfstream, and xdfwriter packages, mirroring mebo's relationship to
// its blob package: Parse for the whole read path, NewBuilder for the whole
// write path. For fine-grained control — inspecting individual chunks,
// reusing the length codec, driving a stream writer by hand — use those
// packages directly.
package xdfgo

import (
	"github.com/arloliu/xdfgo/xdfstream"
	"github.com/arloliu/xdfgo/xdfwriter"
)

// Parse decodes a complete XDF byte stream into a File.
//
// On a malformed or truncated input, Parse returns the longest prefix of
// streams it could reconstruct together with the error that stopped it.
// Input without the XDF magic number yields a nil File.
func Parse(data []byte) (*xdfstream.File, error) {
	return xdfstream.Parse(data)
}

// NewBuilder returns a Builder for writing a new XDF file to a sink.
func NewBuilder() *xdfwriter.Builder {
	return xdfwriter.NewBuilder()
}

// AddStream begins a new stream of channel value type F, with timestamp mode
// T (xdfwriter.HasTimestamps or xdfwriter.NoTimestamps), on w.
//
// This is a package-level function, not a method on Writer, because Go
// forbids a method from introducing type parameters beyond the receiver's.
func AddStream[F xdfwriter.ValueType, T xdfwriter.TimestampMode](
	w *xdfwriter.Writer, info xdfwriter.StreamInfo,
) (*xdfwriter.StreamBuilder[F, T], error) {
	return xdfwriter.AddStream[F, T](w, info)
}

// UseStream adds a stream, starts it, and guarantees its footer is written
// before returning.
func UseStream[F xdfwriter.ValueType, T xdfwriter.TimestampMode](
	w *xdfwriter.Writer, info xdfwriter.StreamInfo, fn func(*xdfwriter.StreamWriter[F, T]) error,
) error {
	return xdfwriter.UseStream(w, info, fn)
}
