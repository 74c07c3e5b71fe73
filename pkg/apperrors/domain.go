package apperrors

import "net/http"

// Factories for common business-logic errors. Services wrap repository
// sentinels through these before handing errors to the HTTP layer.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition reports an illegal status edge, naming both ends.
func ErrInvalidTransition(domain, from, to string) *AppError {
	return New(CodeInvalidStatus, domain, "Illegal status transition: "+from+" -> "+to, http.StatusBadRequest)
}

func ErrFileTooLarge(message string) *AppError {
	return New(CodeFileTooLarge, "media", message, http.StatusRequestEntityTooLarge)
}

func ErrUnsupportedMedia(message string) *AppError {
	return New(CodeUnsupportedMedia, "media", message, http.StatusUnsupportedMediaType)
}

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrTokenExpired       = New(CodeTokenExpired, "auth", "Token expired", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
)
