package domain

import "errors"

// ErrUsage is returned when a tool is invoked with fewer arguments than it needs.
var ErrUsage = errors.New("insufficient arguments")

// ErrFileAccess is returned when an input file cannot be opened or read.
// It is fatal for the whole run.
var ErrFileAccess = errors.New("file access failed")

// ErrNoUnits signals that nothing was counted (e.g. the tier never occurred).
// It is an expected end state, not a failure.
var ErrNoUnits = errors.New("no units found")

// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown encoding")
