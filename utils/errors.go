package utils

import (
	"errors"
	"net/http"
)

// Machine-readable error codes surfaced alongside the HTTP status.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeDuplicate    = "DUPLICATE"
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeNotFound     = "NOT_FOUND"
	CodeNetworkError = "NETWORK_ERROR"
	CodeServerError  = "SERVER_ERROR"
)

// CustomError carries a specific HTTP status code and error code
type CustomError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Code: codeForStatus(statusCode), Message: message}
}

func NewInvalidInput(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusBadRequest, Code: CodeInvalidInput, Message: message}
}

func NewDuplicate(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusConflict, Code: CodeDuplicate, Message: message}
}

func NewAuthRequired(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusUnauthorized, Code: CodeAuthRequired, Message: message}
}

func NewNotFound(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

func NewNetworkError(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusBadGateway, Code: CodeNetworkError, Message: message}
}

func NewServerError(message string) *CustomError {
	return &CustomError{StatusCode: http.StatusInternalServerError, Code: CodeServerError, Message: message}
}

// HasCode reports whether err is a CustomError with the given code.
func HasCode(err error, code string) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code == code
	}
	return false
}

func codeForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return CodeInvalidInput
	case http.StatusConflict:
		return CodeDuplicate
	case http.StatusUnauthorized:
		return CodeAuthRequired
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadGateway:
		return CodeNetworkError
	default:
		return CodeServerError
	}
}
