package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert message")
	ErrFailedToList   = errors.New("failed to list messages")
)
