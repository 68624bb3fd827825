package domain

// MaxJPEGDimension is the practical ceiling for a single JPEG axis.
const MaxJPEGDimension = 65500

type ResizeRequest struct {
	InputJPEG     string `json:"input_jpeg"`
	DesiredWidth  int    `json:"desired_width"`
	DesiredHeight int    `json:"desired_height"`
}
