package domain

import "errors"

// Business errors (mapped to HTTP codes in transport/web/v1)
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrUnauth           = errors.New("unauthorized")       // 401
	ErrForbidden        = errors.New("forbidden")          // 403
	ErrNotFound         = errors.New("not_found")          // 404
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrConflict         = errors.New("conflict")           // 409
	ErrUnexpected       = errors.New("unexpected")         // 500

	// engine / collaborator errors
	ErrTransition        = errors.New("transition_not_allowed") // 409, §state tracker
	ErrAccessUnavailable = errors.New("access_unavailable")     // 502, signed URL could not be produced
	ErrStoreUnavailable  = errors.New("store_unavailable")      // 503, record store unreachable
)

// Envelope error codes (stable, independent from HTTP status)
const (
	ErrCodeBadParams         = 1000
	ErrCodeUnauth            = 1001
	ErrCodeForbidden         = 1003
	ErrCodeNotFound          = 1004
	ErrCodeMethodNotAllowed  = 1005
	ErrCodeConflict          = 1009
	ErrCodeTransition        = 1010
	ErrCodeAccessUnavailable = 1020
	ErrCodeStoreUnavailable  = 1021
	ErrCodeUnexpected        = 1500
)
