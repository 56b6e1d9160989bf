package service

import "errors"

// ErrNotFound indicates the requested resource does not exist or does not
// belong to the calling user. The two cases are deliberately
// indistinguishable so a non-owner learns nothing about a resource's
// existence.
var ErrNotFound = errors.New("not found")

// ValidationError represents a bad-request condition (HTTP 400). Message
// names the first violation found.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
