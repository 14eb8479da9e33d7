package udf

import "errors"

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrDuplicate       = errors.New("function already registered")
	ErrArgCount        = errors.New("wrong number of arguments")
	ErrBadArg          = errors.New("bad argument")
	ErrMissingArg      = errors.New("missing argument")
	ErrNoLibrary       = errors.New("no curve library")
	ErrPanic           = errors.New("internal error")
)
