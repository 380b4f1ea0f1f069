package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenExpired covers tokens whose signature checks out but whose exp
	// claim is in the past. Every other verification failure collapses into
	// ErrTokenInvalid.
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")

	ErrMissingToken = errors.New("no access token provided")
	ErrForbidden    = errors.New("insufficient role")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrEncryptionFailed marks a processing failure in the sensitive-field
	// cipher; writes carrying it must never reach the store.
	ErrEncryptionFailed = errors.New("sensitive field encryption failed")

	// ErrBlobStorage wraps object-storage failures so callers need not know
	// the storage backend.
	ErrBlobStorage = errors.New("object storage operation failed")
)
