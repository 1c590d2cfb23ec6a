package model

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrStartInPast        = errors.New("start date cannot be in the past")
)
