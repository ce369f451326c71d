package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrInvalidRecord  = errors.New("invalid record")
)
