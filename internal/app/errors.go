package service

import "errors"

// Sentinel kinds for check run errors.
var (
	ErrPairCount     = errors.New("event and statement counts differ")
	ErrUnknownFormat = errors.New("unknown report format")
)
