package docparse

import "errors"

// Sentinel errors returned by docparse and its dialects.
var (
	// ErrUnexpectedLine indicates a line in a field-list section that
	// neither starts a field nor continues an open one.
	ErrUnexpectedLine = errors.New("unexpected line in field block")
	// ErrDirectiveNotFound indicates a lookup of a directive the document
	// does not contain.
	ErrDirectiveNotFound = errors.New("directive not found")
	// ErrUnknownStyle indicates a style with no registered parser.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrNoText indicates annotation text that is empty after cleaning.
	ErrNoText = errors.New("no annotation text")
	// ErrInvalidOption indicates a configuration value that cannot be used,
	// such as an unknown output format or a negative indent.
	ErrInvalidOption = errors.New("invalid option")
	// ErrReadInput indicates annotation text that could not be read.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an encoded result that could not be written.
	ErrWriteOutput = errors.New("write output")
)
