package store

import "errors"

var (
	ErrEmptyTask   = errors.New("task cannot be empty")
	ErrDuplicateID = errors.New("duplicate item id")
)
