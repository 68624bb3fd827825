// Package b64 converts between raw bytes and standard (RFC 4648) base64
// text. Decoding tolerates the line-wrapped output of common producers.
package b64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var newlines = strings.NewReplacer("\n", "", "\r", "")

// Decode converts base64 text to bytes. Leading/trailing whitespace and
// embedded newlines are stripped first; input that is empty after stripping
// decodes to an empty slice, not an error. Corrupt base64 returns a wrapped
// error.
func Decode(text string) ([]byte, error) {
	clean := newlines.Replace(strings.TrimSpace(text))
	if clean == "" {
		return []byte{}, nil
	}

	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}

	return data, nil
}

// Encode converts bytes to padded standard base64 text. Decode(Encode(b))
// returns b for every byte sequence, including the empty one.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
