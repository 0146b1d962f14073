package service

import "errors"

// Sentinel errors handlers translate into HTTP statuses. Credential
// failures share one message so responses never reveal which factor failed.
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrAccessDenied       = errors.New("access denied")
)
