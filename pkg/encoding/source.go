// Package encoding normalizes the text encoding of model source files.
package encoding

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewSourceReader returns a reader that strips a UTF-8 byte order mark and
// decodes UTF-16 input announced by a BOM into UTF-8. Input without a BOM
// passes through unchanged, byte for byte.
func NewSourceReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// Normalize applies the same conversion as NewSourceReader to data held in
// memory. Returns data unchanged if conversion fails.
func Normalize(data []byte) []byte {
	result, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return data
	}
	return result
}
