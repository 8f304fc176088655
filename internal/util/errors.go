package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrTestNotFound        = errors.New("test not found")
	ErrTestNotAccessible   = errors.New("test not published or not accessible")
	ErrTestNotPrivate      = errors.New("test is not in private mode")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAlreadySubmitted    = errors.New("test already submitted")
	ErrResultNotReady      = errors.New("result not ready: test not completed")
)
