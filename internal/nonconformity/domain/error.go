package domain

import "errors"

var (
	ErrNotFound               = errors.New("non-conformity not found")
	ErrInvalidNonConformityID = errors.New("invalid non-conformity id")
)
