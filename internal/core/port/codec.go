package port

import "image"

type ImageCodec interface {
	// Decode parses raw image bytes into a pixel buffer and fails on corrupt or
	// non-image data.
	Decode(data []byte) (image.Image, error)
	// Resize scales an image to exactly width x height pixels.
	Resize(img image.Image, width, height int) image.Image
	// Encode serializes an image to JPEG bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)
}
