package main

import "errors"

var (
	// ErrNotFound is returned by the index command when the target is absent.
	// main turns it into exit status 1 without further output.
	ErrNotFound = errors.New("target not found")

	// ErrUnsorted is returned by the index command in strict mode when the
	// values are not in ascending order.
	ErrUnsorted = errors.New("values are not sorted ascending")
)
