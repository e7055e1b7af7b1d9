package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Kind classifies an application error independently of its HTTP status.
// Conflict and Validation both map to 400 on the wire but are distinct kinds.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindNotFound       Kind = "not_found"
	KindAuthentication Kind = "authentication"
	KindInternal       Kind = "internal"
)

// Error is an application error with an HTTP status and a client-safe message.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

func Conflict(message string) *Error {
	return New(KindConflict, http.StatusBadRequest, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

func Unauthorized(message string) *Error {
	return New(KindAuthentication, http.StatusUnauthorized, message, nil)
}

func Internal(message string, err error) *Error {
	return New(KindInternal, http.StatusInternalServerError, message, err)
}

func is(err error, kind Kind) bool {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func IsValidation(err error) bool     { return is(err, KindValidation) }
func IsConflict(err error) bool       { return is(err, KindConflict) }
func IsNotFound(err error) bool       { return is(err, KindNotFound) }
func IsAuthentication(err error) bool { return is(err, KindAuthentication) }

// Respond writes the error as `{"error": "<message>"}` with the matching
// status code. Unknown errors are logged and surfaced as a generic 500 so
// internals never leak to the client.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		if appErr.Kind == KindInternal {
			zap.L().Error("Internal error", zap.Error(err))
		}
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	zap.L().Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
