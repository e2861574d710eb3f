package service

import "errors"

var (
	ErrNilSource    = errors.New("source factory returned a nil source")
	ErrEmptySubject = errors.New("owner and repo are required")
)
