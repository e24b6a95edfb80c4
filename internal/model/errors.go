package model

import "errors"

var (
	// Authentication related errors
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrUnauthenticated  = errors.New("could not validate credentials")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("not enough permissions")

	// Token related errors
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")

	// User related errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// Todo related errors
	ErrTodoNotFound = errors.New("todo not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
