package xdfwriter

import (
	"io"

	"github.com/arloliu/xdfgo/chunk"
	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/section"
	"github.com/arloliu/xdfgo/xmltree"
)

// Builder accumulates file-header metadata before the magic number and
// FileHeader chunk are committed to a sink.
type Builder struct {
	info *xmltree.Element
	desc *xmltree.Element
}

// NewBuilder returns a Builder seeded with the supported file version.
func NewBuilder() *Builder {
	return &Builder{info: chunk.NewFileHeaderXML()}
}

// AddMetadata sets a top-level <info> child, overwriting any prior value
// under the same key.
func (b *Builder) AddMetadata(key, value string) *Builder {
	b.info.SetChildTextOverwrite(key, value)
	return b
}

// AddDesc sets a child of the file header's <desc> subtree, overwriting any
// prior value under the same key. The <desc> subtree is grafted onto <info>
// when Build is called.
func (b *Builder) AddDesc(key, value string) *Builder {
	b.descElement().SetChildTextOverwrite(key, value)
	return b
}

// MetadataElement returns the file header's root <info> element directly,
// for callers that need to attach a nested XML subtree rather than a single
// flat key/value pair — AddMetadata only covers the latter.
func (b *Builder) MetadataElement() *xmltree.Element {
	return b.info
}

// DescElement returns the file header's <desc> subtree directly, creating
// it empty if AddDesc has not been called yet, for callers that need to
// attach a nested XML subtree rather than a single flat key/value pair.
func (b *Builder) DescElement() *xmltree.Element {
	return b.descElement()
}

func (b *Builder) descElement() *xmltree.Element {
	if b.desc == nil {
		b.desc = xmltree.New("desc")
	}

	return b.desc
}

// Build writes the magic number and FileHeader chunk to sink and returns a
// Writer ready to accept streams.
func (b *Builder) Build(sink io.Writer) (*Writer, error) {
	if sink == nil {
		return nil, errs.ErrNilSink
	}

	if b.desc != nil {
		b.info.AppendElement(b.desc)
	}

	if _, err := sink.Write(section.WriteMagic(nil)); err != nil {
		return nil, err
	}

	s := newSharedSink(sink)
	if err := s.writeChunk(section.FileHeader, chunk.EncodeFileHeader(b.info)); err != nil {
		return nil, err
	}

	return &Writer{sink: s, nextStreamID: 1}, nil
}
