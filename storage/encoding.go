package storage

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used by text operations without WithEncoding.
var DefaultEncoding encoding.Encoding = unicode.UTF8

type textOptions struct {
	encoding encoding.Encoding
}

type TextOption func(*textOptions)

// WithEncoding sets the character encoding used to store text.
func WithEncoding(enc encoding.Encoding) TextOption {
	return func(o *textOptions) {
		if enc != nil {
			o.encoding = enc
		}
	}
}

func newTextOptions(opts []TextOption) textOptions {
	o := textOptions{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LookupEncoding finds an encoding by its IANA name, such as "UTF-8" or
// "ISO-8859-1".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	return enc, nil
}
