package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"shopcompare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeUpstream     = "UPSTREAM_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// AbortWithError records err on the gin context and writes the error body.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, details any) {
	if err == nil {
		panic("httperr.AbortWithError: err must not be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Error.Details = details

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Classify maps a marked error onto its status and code. Rate limiting is
// checked before the generic upstream mark it always carries.
func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusBadRequest, CodeConflict
	case errs.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, CodeRateLimited
	case errs.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway, CodeUpstream
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// Handle renders any usecase error. Internal errors never leak their message.
func Handle(c *gin.Context, err error) {
	status, code := Classify(err)

	msg := errs.Cause(err)
	switch code {
	case CodeInternal:
		slog.Error("request failed", "error", err, "path", c.Request.URL.Path)
		msg = "Internal server error"
	case CodeUpstream, CodeRateLimited:
		slog.Warn("upstream failure", "error", err, "path", c.Request.URL.Path)
	}

	AbortWithError(c, status, err, code, msg, nil)
}

// BindError answers a request that failed gin binding.
func BindError(c *gin.Context, err error) {
	var details []FieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), CodeValidation, "Invalid request", details)
}

// Validation answers with a validation error carrying msg.
func Validation(c *gin.Context, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.New(msg), errs.ErrValidation), CodeValidation, msg, nil)
}

func Unauthorized(c *gin.Context, msg string) {
	AbortWithError(c, http.StatusUnauthorized, errs.Mark(errs.New(msg), errs.ErrUnauthorized), CodeUnauthorized, msg, nil)
}
