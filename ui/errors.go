package ui

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parmatma/domain/wellness"
	"parmatma/internal/errors"
)

// statusFor maps application error codes onto HTTP statuses. Validation-class
// codes are the caller's fault; external-service failures surface as a bad
// gateway so clients can distinguish them from our own faults.
func statusFor(code string) int {
	switch code {
	case errors.CodeInvalidInput, errors.CodeValidationError,
		errors.CodeInvalidCategory, errors.CodeTextTooLong:
		return http.StatusBadRequest
	case errors.CodeInsufficientData:
		return http.StatusUnprocessableEntity
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// codeFor resolves the application error code, translating the habit-domain
// sentinel errors into their API codes.
func codeFor(err error) string {
	switch {
	case stderrors.Is(err, wellness.ErrInvalidCategory):
		return errors.CodeInvalidCategory
	case stderrors.Is(err, wellness.ErrTextTooLong):
		return errors.CodeTextTooLong
	case stderrors.Is(err, wellness.ErrInsufficientData):
		return errors.CodeInsufficientData
	case stderrors.Is(err, wellness.ErrInvalidMeasure):
		return errors.CodeValidationError
	}
	if code := errors.GetCode(err); code != "UNKNOWN" {
		return code
	}
	return errors.CodeInternalError
}

// writeError renders an error as the standard JSON error envelope.
func writeError(c *gin.Context, err error) {
	code := codeFor(err)
	c.JSON(statusFor(code), gin.H{
		"error": err.Error(),
		"code":  code,
	})
}
