package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shape: empty font data")

	// ErrNoFonts is returned when shaping is requested before any font
	// has been loaded into the Library.
	ErrNoFonts = errors.New("shape: no fonts loaded")
)

// FontError reports a failure to load one font source. Batch font
// loading collects one FontError per failed source and continues with
// the remaining sources.
type FontError struct {
	// Source names the failed source: a file path, or "bytes" for
	// in-memory data.
	Source string
	// Err is the underlying parse or read error.
	Err error
}

func (e *FontError) Error() string {
	return "shape: loading font " + e.Source + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
