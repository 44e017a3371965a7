package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes.
const (
	CodeCredential    = "GW_001"
	CodeUpstream      = "GW_002"
	CodeTransport     = "GW_003"
	CodeNotConfigured = "GW_004"
	CodeValidation    = "VAL_001"
	CodeInvalidAmount = "PAY_002"
	CodeNotFound      = "RES_001"
	CodeForbidden     = "RES_002"
	CodeConflict      = "RES_003"
	CodeSignature     = "SEC_002"
	CodeRateLimited   = "RATE_001"
	CodeInternal      = "SYS_001"
)

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// ---- Gateway (GW) ----

// ErrCredential is raised when a client-credential exchange with a gateway fails.
// The gateway's own message is kept so operators see why.
func ErrCredential(gateway, gatewayMessage string, err error) *AppError {
	return Wrap(CodeCredential, fmt.Sprintf("%s credential exchange failed: %s", gateway, gatewayMessage), http.StatusBadGateway, err)
}

// ErrUpstream is a business-level failure reported by a reachable gateway.
func ErrUpstream(gateway, gatewayMessage string) *AppError {
	return New(CodeUpstream, fmt.Sprintf("%s: %s", gateway, gatewayMessage), http.StatusBadGateway)
}

// ErrTransport covers network errors and timeouts talking to a gateway.
func ErrTransport(gateway string, err error) *AppError {
	return Wrap(CodeTransport, fmt.Sprintf("%s unreachable", gateway), http.StatusGatewayTimeout, err)
}

func ErrGatewayNotConfigured(name string, available []string) *AppError {
	return New(CodeNotConfigured, fmt.Sprintf("gateway %q not configured (available: %v)", name, available), http.StatusBadRequest)
}

// ---- Validation & resources ----

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrForbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// ErrConflict marks an attempt to re-create an existing record. Reconcilers
// treat it as a no-op.
func ErrConflict(entity string) *AppError {
	return New(CodeConflict, fmt.Sprintf("%s already exists", entity), http.StatusConflict)
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New(CodeSignature, "Invalid signature", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
