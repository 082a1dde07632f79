package domain

import "errors"

var (
	ErrNotFound          = errors.New("contract not found")
	ErrInvalidContractID = errors.New("invalid contract id")
)
