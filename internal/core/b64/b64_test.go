package b64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "one byte, two padding chars", data: []byte{0x42}},
		{name: "two bytes, one padding char", data: []byte{0x42, 0x43}},
		{name: "three bytes, no padding", data: []byte("abc")},
		{name: "text", data: []byte("Hello, World!")},
		{name: "binary with zero bytes", data: []byte{0x00, 0xFF, 0x00, 0x10, 0x80, 0x7F}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := Decode(Encode(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.data, decoded)
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "SGVsbG8sIFdvcmxkIQ==", Encode([]byte("Hello, World!")))
	assert.Equal(t, "", Encode(nil))
}

func TestDecodeWhitespaceTolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "SGVsbG8sIFdvcmxkIQ==", want: "Hello, World!"},
		{name: "embedded newlines", input: "SGVsbG8s\nIFdvcmxk\nIQ==", want: "Hello, World!"},
		{name: "windows line endings", input: "SGVsbG8s\r\nIFdvcmxk\r\nIQ==", want: "Hello, World!"},
		{name: "surrounding whitespace", input: "  \tSGVsbG8sIFdvcmxkIQ==\n ", want: "Hello, World!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := Decode(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(decoded))
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\r\n", " \t "} {
		decoded, err := Decode(input)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "illegal characters", input: "!!!not-base64!!!"},
		{name: "missing padding", input: "SGVsbG8"},
		{name: "padding in the middle", input: "SG=VsbG8s"},
		{name: "url-safe alphabet", input: "a-b_"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			assert.Error(t, err)
		})
	}
}
