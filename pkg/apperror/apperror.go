// Package apperror carries a business error with an HTTP-ish code so the
// transport edge can map failures without inspecting message strings.
package apperror

import "errors"

type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "application error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(code int, msg string) *Error { return &Error{Code: code, Msg: msg} }

func Wrap(code int, msg string, err error) *Error { return &Error{Code: code, Msg: msg, Err: err} }

func BadRequest(msg string) *Error   { return New(400, msg) }
func Unauthorized(msg string) *Error { return New(401, msg) }
func Forbidden(msg string) *Error    { return New(403, msg) }
func NotFound(msg string) *Error     { return New(404, msg) }
func Conflict(msg string) *Error     { return New(409, msg) }
func Internal(msg string, err error) *Error {
	return Wrap(500, msg, err)
}

// CodeOf extracts the code from any error in the chain, defaulting to 500.
func CodeOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 500
}
