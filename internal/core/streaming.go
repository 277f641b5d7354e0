package core

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecodingReader wraps r so that a leading byte-order mark is dropped and
// invalid UTF-8 sequences come out as U+FFFD. A UTF-16 BOM switches decoding
// to UTF-16, which covers spreadsheet exports saved as "Unicode Text".
func newDecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
