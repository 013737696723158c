package usecase

import "errors"

var (
	ErrInvalidInput              = errors.New("invalid input")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrForbidden                 = errors.New("forbidden")
	ErrNotFound                  = errors.New("resource not found")
	ErrConflict                  = errors.New("resource conflict")
	ErrUpstream                  = errors.New("upstream provider failure")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
	ErrStore                     = errors.New("store failure")
	ErrDependencyUnavailable     = errors.New("dependency unavailable")
)
