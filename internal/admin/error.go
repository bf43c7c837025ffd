package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameExists     = errors.New("username already registered")
)
