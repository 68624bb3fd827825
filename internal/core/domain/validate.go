package domain

// ValidateDimensions checks a target size against the allowed range
// [1, MaxJPEGDimension] per axis. It runs before any decoding work, so
// malformed dimensions never cost a decode.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return &InvalidInputError{Reason: "Target dimensions must be positive integers"}
	}

	if width > MaxJPEGDimension || height > MaxJPEGDimension {
		return &InvalidInputError{Reason: "Target dimensions exceed maximum JPEG size"}
	}

	return nil
}
