package domain

import "errors"

var (
	ErrNotFound        = errors.New("survey not found")
	ErrInvalidSurveyID = errors.New("invalid survey id")
)
