package domain

import "errors"

var (
	ErrEntryNotFound = errors.New("catalog entry not found")
)
