package errors

// ValidateGridDimensions checks that a grid has positive row and column counts.
func ValidateGridDimensions(rows, cols int) error {
	if rows <= 0 {
		return New(ErrCodeInvalidGrid, "rows must be positive, got %d", rows)
	}
	if cols <= 0 {
		return New(ErrCodeInvalidGrid, "columns must be positive, got %d", cols)
	}
	return nil
}

// ValidateImageDimensions checks that both source image dimensions are positive.
func ValidateImageDimensions(width, height float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidImage, "image width must be positive, got %g", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidImage, "image height must be positive, got %g", height)
	}
	return nil
}
