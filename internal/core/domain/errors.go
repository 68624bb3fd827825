package domain

// InvalidInputError marks a request the client got wrong: a malformed
// envelope, out-of-range dimensions, or empty/undecodable base64.
type InvalidInputError struct {
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// ProcessingError marks a failure inside the transform itself: input that is
// valid base64 but not a decodable image, or an encoder fault.
type ProcessingError struct {
	Reason string
	Err    error
}

func (e *ProcessingError) Error() string {
	return e.Reason
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
