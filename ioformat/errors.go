package ioformat

import "errors"

var (
	ErrMalformedLine    = errors.New("ioformat: malformed line")
	ErrUnknownBlockType = errors.New("ioformat: unknown block type")
	ErrUnknownAxisType  = errors.New("ioformat: unknown alignment axis type")
	ErrUnknownReference = errors.New("ioformat: reference to unknown block or pin name")
)
