// Package errs defines the sentinel errors shared by the vecfield packages.
//
// Callers should compare with errors.Is, since most errors are wrapped with
// additional context (file path, line number) before being returned.
package errs

import "errors"

// File and codec errors.
var (
	// ErrFileNotFound is returned when a save or load target cannot be opened.
	ErrFileNotFound = errors.New("file not found")
	// ErrParseFailure is returned when persisted binary or text input is malformed.
	ErrParseFailure = errors.New("parse failure")
	// ErrNameTooLong is returned when a dataset name exceeds the codec's length limit.
	ErrNameTooLong = errors.New("dataset name too long")
	// ErrInvalidName is returned when a dataset name cannot be represented in a format,
	// e.g. a name containing a line break in the line-oriented grid text format.
	ErrInvalidName = errors.New("dataset name cannot be encoded")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrTimestampOutOfRange is returned when a timestamp falls outside the years
	// 1 to 9999 (UTC), which neither persisted format can represent.
	ErrTimestampOutOfRange = errors.New("timestamp out of range")
	// ErrUnsupportedLayout is returned for an unknown point list record layout.
	ErrUnsupportedLayout = errors.New("unsupported point list layout")
)

// Dataset construction errors.
var (
	// ErrInvalidDimensions is returned when a grid is built with a negative dimension.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrNilFieldFunc is returned when a grid is built without a field function.
	ErrNilFieldFunc = errors.New("field function is nil")
	// ErrCellOutOfRange is returned when a grid cell index is outside the grid.
	ErrCellOutOfRange = errors.New("grid cell index out of range")
	// ErrCellCountMismatch is returned when restored grid cells do not match Ox*Oy.
	ErrCellCountMismatch = errors.New("grid cell count mismatch")
)

// Collection registry errors.
var (
	// ErrDuplicateName is returned when a dataset name is already registered.
	ErrDuplicateName = errors.New("dataset name already exists")
)
