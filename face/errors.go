package face

import "errors"

// Sentinel errors for face package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("face: empty font data")

	// ErrFaceIndexOutOfRange is returned when the requested face is not in
	// the collection.
	ErrFaceIndexOutOfRange = errors.New("face: face index out of range")

	// ErrMalformedCollection is returned when a collection entry points
	// outside the file.
	ErrMalformedCollection = errors.New("face: malformed font collection")
)
