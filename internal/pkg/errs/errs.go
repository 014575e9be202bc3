package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidParams = New(BizCodeInvalidParams, http.StatusBadRequest, "invalid params", nil)

	// ErrReleaseUnreachable covers transport failures, timeouts, non-200
	// statuses and empty bodies from a release endpoint.
	ErrReleaseUnreachable = New(BizCodeReleaseUnreachable, http.StatusBadGateway, "release endpoint unreachable", nil)
	// ErrReleaseMalformed covers unparseable payloads and payloads
	// missing the tag_name field.
	ErrReleaseMalformed = New(BizCodeReleaseMalformed, http.StatusBadGateway, "release payload malformed", nil)
	// ErrVersionUnparsable is returned when the current and remote
	// versions cannot be ordered by any registered parser.
	ErrVersionUnparsable = New(BizCodeVersionUnparsable, http.StatusUnprocessableEntity, "version is not supported for parsing", nil)

	ErrTargetNotFound      = New(BizCodeTargetNotFound, http.StatusNotFound, "target not found", nil)
	ErrTargetAlreadyExists = New(BizCodeTargetAlreadyExists, http.StatusConflict, "target slug already exists", nil)
	ErrSweepInProgress     = New(BizCodeSweepInProgress, http.StatusConflict, "sweep already running on another instance", nil)
)

type Error struct {
	bizCode  int
	httpCode int
	message  string
	details  any
	internal error
}

func New(bizCode, httpCode int, message string, internal error) *Error {
	return &Error{
		bizCode:  bizCode,
		httpCode: httpCode,
		message:  message,
		internal: internal,
	}
}

func NewUnexpected(msg string, errs ...error) *Error {
	var err error
	if len(errs) != 0 {
		err = errs[0]
	}
	return &Error{
		bizCode:  -1,
		message:  msg,
		httpCode: http.StatusInternalServerError,
		internal: err,
	}
}

func (e *Error) Error() string {
	if e.internal != nil {
		return fmt.Sprintf("%s: %v", e.message, e.internal)
	}
	return e.message
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	return ok && e.bizCode == t.BizCode()
}

func (e *Error) Unwrap() error {
	return e.internal
}

func (e *Error) BizCode() int {
	return e.bizCode
}

func (e *Error) HTTPCode() int {
	return e.httpCode
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Details() any {
	return e.details
}

func (e *Error) Wrap(err error) *Error {
	return &Error{
		bizCode:  e.bizCode,
		httpCode: e.httpCode,
		message:  e.message,
		details:  e.details,
		internal: err,
	}
}

func (e *Error) WithDetails(details any) *Error {
	return &Error{
		bizCode:  e.bizCode,
		httpCode: e.httpCode,
		message:  e.message,
		details:  details,
		internal: e.internal,
	}
}
