package ghcas

import "errors"

var (
	ErrMissingToken  = errors.New("ghcas: access token is required for uploads")
	ErrInvalidTarget = errors.New("ghcas: invalid target")
	ErrNilStore      = errors.New("ghcas: record store is nil")
)
