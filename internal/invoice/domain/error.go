package domain

import "errors"

var (
	ErrNotFound         = errors.New("invoice not found")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
)
