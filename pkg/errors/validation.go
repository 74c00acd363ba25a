package errors

// ValidateSize validates thumbnail target dimensions.
// Both width and height must be strictly positive; the compositor has no
// meaningful output for an empty canvas.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSize, "size must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidateCount validates a catalog record count.
func ValidateCount(count int) error {
	if count < 0 {
		return New(ErrCodeInvalidInput, "count cannot be negative, got %d", count)
	}
	return nil
}
