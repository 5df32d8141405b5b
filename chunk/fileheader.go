package chunk

import (
	"fmt"
	"strconv"

	"github.com/arloliu/xdfgo/errs"
	"github.com/arloliu/xdfgo/xmltree"
)

// SupportedVersion is the only file-header <version> value this codec
// accepts.
const SupportedVersion = 1.0

// ParseFileHeader parses a FileHeader chunk payload (a bare XML document)
// and validates its <version> child.
func ParseFileHeader(payload []byte) (xml *xmltree.Element, version float64, err error) {
	xml, err = xmltree.Parse(payload)
	if err != nil {
		return nil, 0, err
	}

	versionText, err := xml.RequireChildText("version")
	if err != nil {
		return nil, 0, fmt.Errorf("%w: file header missing <version>", errs.ErrBadElement)
	}

	version, err = strconv.ParseFloat(versionText, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: version %q is not numeric", errs.ErrUnsupportedVersion, versionText)
	}

	if version != SupportedVersion {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrUnsupportedVersion, version)
	}

	return xml, version, nil
}

// EncodeFileHeader serializes xml as a FileHeader chunk payload.
func EncodeFileHeader(xml *xmltree.Element) []byte {
	return xml.Bytes()
}

// NewFileHeaderXML builds the minimal <info><version>1.0</version></info>
// root element a writer starts from.
func NewFileHeaderXML() *xmltree.Element {
	root := xmltree.New("info")
	root.AppendChild("version", strconv.FormatFloat(SupportedVersion, 'f', 1, 64))

	return root
}
