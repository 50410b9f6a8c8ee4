package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUnknownRole        = errors.New("unknown role")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrGymExists          = errors.New("gym already exists")
	ErrAdminNotFound      = errors.New("gym admin not found")
	ErrForbidden          = errors.New("access forbidden")
)
