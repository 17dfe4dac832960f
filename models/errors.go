package models

import (
	"errors"
)

var (
	ErrFit              = errors.New("unable to fit model")
	ErrNotFitted        = errors.New("model has not been fitted")
	ErrBadHorizon       = errors.New("forecast horizon must be at least 1")
	ErrInsufficientData = errors.New("series is too short for seasonal fitting")
	ErrNoOptions        = errors.New("no initialized model options")
)
