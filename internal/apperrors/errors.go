package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found within the
// caller's workshop scope. Handlers translate this to 404.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials or token.
var ErrUnauthorized = errors.New("unauthorized")
