package domain

import "errors"

var (
	ErrNotFound           = errors.New("trainee not found")
	ErrDisclaimerNotFound = errors.New("disclaimer not found")
	ErrInvalidTraineeID   = errors.New("invalid trainee id")
)
