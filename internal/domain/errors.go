package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is not active")
	ErrNoTransaction      = errors.New("no active transaction")
	ErrTransactionActive  = errors.New("transaction already active")
)
