package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrPostNotFound = errors.New("post not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrInternal = errors.New("internal error")
