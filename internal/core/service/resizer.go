package service

import (
	"imgsizer/internal/core/b64"
	"imgsizer/internal/core/domain"
	"imgsizer/internal/core/port"

	"github.com/rs/zerolog/log"
)

// jpegQuality is the fixed encoder setting for all output images.
const jpegQuality = 85

// Resizer sequences a request through validate, decode, resize and encode.
// It holds no mutable state, so a single instance serves concurrent requests
// without synchronization.
type Resizer struct {
	codec port.ImageCodec
}

func NewResizer(codec port.ImageCodec) *Resizer {
	return &Resizer{codec: codec}
}

// Resize turns a base64 JPEG into a base64 JPEG of exactly the requested
// pixel dimensions. Client mistakes come back as *domain.InvalidInputError,
// transform faults as *domain.ProcessingError.
func (r *Resizer) Resize(req *domain.ResizeRequest) (string, error) {
	l := log.With().
		Int("width", req.DesiredWidth).
		Int("height", req.DesiredHeight).
		Logger()

	if err := domain.ValidateDimensions(req.DesiredWidth, req.DesiredHeight); err != nil {
		l.Debug().Err(err).Msg("rejected target dimensions")
		return "", err
	}

	raw, err := b64.Decode(req.InputJPEG)
	if err != nil || len(raw) == 0 {
		l.Debug().Err(err).Msg("rejected input payload")
		return "", &domain.InvalidInputError{Reason: "Invalid or empty base64 input", Err: err}
	}

	img, err := r.codec.Decode(raw)
	if err != nil {
		l.Warn().Err(err).Int("inputBytes", len(raw)).Msg("image decode failed")
		return "", &domain.ProcessingError{
			Reason: "Failed to decode JPEG image - invalid format or corrupted data",
			Err:    err,
		}
	}

	resized := r.codec.Resize(img, req.DesiredWidth, req.DesiredHeight)

	out, err := r.codec.Encode(resized, jpegQuality)
	if err != nil || len(out) == 0 {
		l.Error().Err(err).Msg("image encode failed")
		return "", &domain.ProcessingError{Reason: "Failed to encode resized image to JPEG", Err: err}
	}

	l.Debug().Int("inputBytes", len(raw)).Int("outputBytes", len(out)).Msg("transform finished")

	return b64.Encode(out), nil
}
