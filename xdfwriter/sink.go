// Package xdfwriter implements the streaming, builder-driven XDF writer:
// Builder → Writer → StreamBuilder[F,T] → StreamWriter[F,T]. Every
// StreamWriter created from a Writer shares that Writer's byte sink through
// a mutex, so concurrent stream writers never interleave a torn chunk; the
// spec's "shared mutable resource" pattern, done in Go with sync.Mutex
// instead of the source's Arc<Mutex<SharedState>>.
package xdfwriter

import (
	"io"
	"sync"

	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/internal/pool"
	"github.com/arloliu/xdfgo/section"
)

// sharedSink serializes chunk writes from multiple StreamWriters onto one
// underlying io.Writer.
type sharedSink struct {
	mu sync.Mutex
	w  io.Writer
}

func newSharedSink(w io.Writer) *sharedSink {
	return &sharedSink{w: w}
}

// writeChunk frames payload under tag and writes it atomically with respect
// to every other writeChunk call sharing this sink.
func (s *sharedSink) writeChunk(tag section.Tag, payload []byte) error {
	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	buf.B = chunk.WriteRaw(buf.B, tag, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.w.Write(buf.Bytes())

	return err
}
