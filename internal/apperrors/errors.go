package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated or presented
// invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates that the stored refresh token has expired
// and a new login is required.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrPayloadTooLarge indicates that an uploaded payload exceeds the configured limit.
var ErrPayloadTooLarge = errors.New("payload too large")
