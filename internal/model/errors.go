package model

import "errors"

// Sentinel errors for the ledger core. Callers match with errors.Is; the
// package that fails wraps these with the offending value for context.
var (
	ErrDuplicateValue   = errors.New("duplicate segment value")
	ErrDuplicateUser    = errors.New("duplicate user")
	ErrUnknownSegment   = errors.New("unknown segment value")
	ErrUnknownUser      = errors.New("unknown user")
	ErrAuthentication   = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidSide      = errors.New("invalid posting side")
)
