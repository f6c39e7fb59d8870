package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// NoData reasons reported on analysis results instead of errors.
const (
	NoDataRankings = "no_rankings"
	NoDataRoster   = "empty_roster"
)
