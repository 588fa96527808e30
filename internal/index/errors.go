package index

// invalidIndexError signals a well-formed JSON document that is not a usable
// index (missing or malformed weight_map). Load/parse failures are returned
// as wrapped IO/JSON errors instead.
type invalidIndexError struct{ msg string }

func (e invalidIndexError) Error() string { return e.msg }

// ErrInvalidIndex constructs an invalidIndexError.
func ErrInvalidIndex(msg string) error { return invalidIndexError{msg: msg} }

// IsInvalidIndex reports whether err indicates a structurally invalid index.
func IsInvalidIndex(err error) bool {
	_, ok := err.(invalidIndexError)
	return ok
}
