package apierror

import (
	"errors"
	"fmt"
	"jobboard/cmd/internal/domain/failure"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	NotFoundError    = NewSimple(http.StatusNotFound, "Resource not found")
	ForbiddenError   = NewSimple(http.StatusForbidden, "Missing access")
	ConflictError    = NewSimple(http.StatusConflict, "Resource was modified concurrently, fetch it and retry")
	InvalidIDError   = NewSimple(http.StatusBadRequest, "The provided ID is invalid, IDs are UUIDs")
	InvalidBodyError = NewSimple(http.StatusBadRequest, "The request payload is invalid")

	/*
	 * Used for authentications
	 */
	UnauthorizedError     = NewSimple(http.StatusUnauthorized, "Authentication required")
	InvalidAuthTokenError = NewSimple(http.StatusUnauthorized, "Invalid or expired authentication token")
	InactiveAccountError  = NewSimple(http.StatusForbidden, "This account is deactivated")
)

// FromError maps an error of the entity core to its response. Denials
// render as 403, use FromReadError on read paths to hide them as 404.
func FromError(err error) ErrorResponse {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, failure.ErrNotFound):
		return NotFoundError
	case errors.Is(err, failure.ErrNotAuthorized):
		return ForbiddenError
	case errors.Is(err, failure.ErrConflict):
		return ConflictError
	case errors.Is(err, failure.ErrExists):
		return NewSimple(http.StatusConflict, "%s", trimKind(err, failure.ErrExists))
	case errors.Is(err, failure.ErrInvalid):
		if verr := FromValidationError(err); verr != nil {
			return verr
		}
		return NewSimple(http.StatusBadRequest, "%s", trimKind(err, failure.ErrInvalid))
	default:
		return InternalServerError
	}
}

// FromReadError conflates denials with absence, so private records of
// other users cannot be probed for existence.
func FromReadError(err error) ErrorResponse {
	if errors.Is(err, failure.ErrNotAuthorized) {
		return NotFoundError
	}
	return FromError(err)
}

// trimKind turns "already exists: email x is taken" into "email x is taken".
func trimKind(err, kind error) string {
	msg := strings.TrimPrefix(err.Error(), kind.Error()+": ")
	if msg == "" {
		return kind.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "uuid4":
			problems[field] = append(problems[field], "Value must be a valid ID")
		case "url":
			problems[field] = append(problems[field], "Value must be a valid URL")
		case "e164":
			problems[field] = append(problems[field], "Value must be a phone number in E.164 format")
		case "nospaces":
			problems[field] = append(problems[field], "Value must not contain whitespaces")
		case "nodupes":
			problems[field] = append(problems[field], "Values must not repeat")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
