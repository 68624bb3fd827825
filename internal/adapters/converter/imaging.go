package converter

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// ImagingCodec implements the image codec port with the pure-Go imaging
// library.
type ImagingCodec struct{}

func NewImagingCodec() *ImagingCodec {
	return &ImagingCodec{}
}

func (c *ImagingCodec) Decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data))
}

// Resize stretches to exactly width x height. Lanczos keeps downscaled
// output close to an area-weighted average.
func (c *ImagingCodec) Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

func (c *ImagingCodec) Encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer

	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
