package render

import "errors"

var (
	// ErrUnsupportedBrush is returned when an operation only supports a
	// subset of brush kinds, such as text drawing with a gradient brush.
	ErrUnsupportedBrush = errors.New("render: unsupported brush kind")

	// ErrNoFont is returned by text operations when no font matching the
	// current paint's family has been registered.
	ErrNoFont = errors.New("render: no font registered for family")
)
