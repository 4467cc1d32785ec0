package content

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/test-resources/errors"
)

// DefaultEncoding is used when no encoding is named.
const DefaultEncoding = "UTF-8"

// Decoding returns the encoding registered under name. IANA names and
// aliases are tried first, then WHATWG labels ("utf8", "latin1").
func Decoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, DefaultEncoding) {
		return unicode.UTF8, nil
	}

	enc, ierr := ianaindex.IANA.Encoding(name)
	if ierr == nil && enc != nil {
		return enc, nil
	}

	enc, herr := htmlindex.Get(name)
	if herr == nil && enc != nil {
		return enc, nil
	}

	if ierr == nil {
		// registered with IANA but without a decoder in x/text
		return nil, errors.UnsupportedEncoding(name, nil)
	}
	return nil, errors.UnsupportedEncoding(name, ierr)
}
