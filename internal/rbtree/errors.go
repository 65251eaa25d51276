package rbtree

import "errors"

var (
	// ErrEmptyKey is returned when an insert is attempted with an empty key.
	ErrEmptyKey = errors.New("empty key")
)
