package domain

import "errors"

// Domain errors.
var (
	ErrIndexOutOfRange  = errors.New("task index out of range")
	ErrInvalidIndexSpec = errors.New("invalid index spec")
	ErrCorruptStore     = errors.New("todo file is corrupt")
	ErrInvalidRepeat    = errors.New("repeat interval must be a positive number of days")
)
