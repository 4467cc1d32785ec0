// Package content materializes located resources as bytes, decoded text,
// eager line lists or lazy line streams.
//
// All text forms decode through the named charset first and split lines
// afterwards, so multi-byte encodings such as UTF-16 split correctly. Line
// terminators are "\n", "\r\n" and a lone "\r"; a final terminator does not
// produce a trailing empty line.
//
// Every call opens the resource again; nothing is cached between calls.
package content

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/wippyai/test-resources/classpath"
	"github.com/wippyai/test-resources/errors"
)

// Bytes returns the raw content of loc. No decoding takes place.
func Bytes(loc classpath.Location) ([]byte, error) {
	f, err := loc.Open()
	if err != nil {
		return nil, errors.ResourceReadFailure(loc.Name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.ResourceReadFailure(loc.Name, err)
	}
	return data, nil
}

// String returns the content of loc decoded with the named encoding, exactly
// as stored. Malformed UTF-8 is a read failure.
func String(loc classpath.Location, charset string) (string, error) {
	enc, err := Decoding(charset)
	if err != nil {
		return "", err
	}

	data, err := Bytes(loc)
	if err != nil {
		return "", err
	}

	text, _, err := transform.Bytes(decoder(enc), data)
	if err != nil {
		return "", errors.ResourceReadFailure(loc.Name, err)
	}
	return string(text), nil
}

// Lines returns all lines of loc in order.
func Lines(loc classpath.Location, charset string) ([]string, error) {
	s, err := OpenLines(loc, charset)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	lines, err := s.Collect()
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

// OpenLines returns a lazy stream over the lines of loc. The resource stays
// open until the stream is exhausted, the consumer stops early, or Close is
// called.
func OpenLines(loc classpath.Location, charset string) (*Stream[string], error) {
	enc, err := Decoding(charset)
	if err != nil {
		return nil, err
	}

	f, err := loc.Open()
	if err != nil {
		return nil, errors.ResourceReadFailure(loc.Name, err)
	}

	sc := newLineScanner(transform.NewReader(f, decoder(enc)))
	next := func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		if err := sc.Err(); err != nil {
			return "", false, errors.ResourceReadFailure(loc.Name, err)
		}
		return "", false, nil
	}
	return NewStream(next, f), nil
}

// decoder validates UTF-8 instead of decoding it, so malformed input fails
// rather than turning into U+FFFD.
func decoder(enc encoding.Encoding) transform.Transformer {
	if enc == unicode.UTF8 {
		return encoding.UTF8Validator
	}
	return enc.NewDecoder()
}
