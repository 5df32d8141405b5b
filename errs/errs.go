// Package errs defines the sentinel error values returned throughout xdfgo.
//
// Callers should use errors.Is against these sentinels rather than comparing
// error strings. Most call sites wrap a sentinel with additional context via
// fmt.Errorf("%w: ...", errs.ErrX, ...).
package errs

import "errors"

// Framing errors: raised while parsing the chunk framing layer.
var (
	ErrNoMagicNumber        = errors.New("xdf: missing XDF: magic number")
	ErrInvalidTag           = errors.New("xdf: invalid chunk tag")
	ErrInvalidNumCountBytes = errors.New("xdf: invalid length-codec count byte")
	ErrLengthOverflow       = errors.New("xdf: length exceeds host address width")
	ErrUnexpectedEOF        = errors.New("xdf: unexpected end of input mid-chunk")
)

// Sample errors: raised while decoding a Samples chunk.
var (
	ErrInvalidSample        = errors.New("xdf: invalid sample timestamp flag")
	ErrLengthMismatch       = errors.New("xdf: sample value count does not match channel count")
	ErrMissingStreamHeader  = errors.New("xdf: samples reference stream id with no prior header")
	ErrStringTooLong        = errors.New("xdf: string value exceeds length-codec limit")
)

// Stream/file errors.
var (
	ErrMissingFileHeader           = errors.New("xdf: file has no FileHeader chunk")
	ErrMultipleFileHeaders         = errors.New("xdf: file has more than one FileHeader chunk")
	ErrUnsupportedVersion          = errors.New("xdf: unsupported file version")
	ErrMissingStreamFooter         = errors.New("xdf: stream has no StreamFooter chunk")
	ErrMissingStreamHeaderForFooter = errors.New("xdf: footer references stream id with no header")
	ErrDuplicateStreamHeader       = errors.New("xdf: duplicate StreamHeader for stream id")
	ErrDuplicateStreamFooter       = errors.New("xdf: duplicate StreamFooter for stream id")
	ErrHeaderAfterSamples          = errors.New("xdf: StreamHeader arrived after samples for the same stream id")
)

// XML errors.
var (
	ErrBadElement  = errors.New("xdf: missing or empty required XML element")
	ErrInvalidXML  = errors.New("xdf: malformed XML payload")
)

// Writer errors.
var (
	ErrChannelCountMismatch = errors.New("xdf: sample length does not match stream channel count")
	ErrNumericOverflow      = errors.New("xdf: numeric conversion overflow")
	ErrStreamAlreadyClosed  = errors.New("xdf: stream writer already closed")
	ErrNilSink              = errors.New("xdf: writer sink is nil")
	ErrInvalidChannelCount  = errors.New("xdf: channel count must be >= 1")
	ErrNegativeSRate        = errors.New("xdf: nominal sample rate must be >= 0")
)
