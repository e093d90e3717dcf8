package ez

import (
	"context"
	"errors"
	"net/http"

	"go-gin-gorm-crm/internal/domain"
	resp "go-gin-gorm-crm/internal/transport/http/response"
)

// AErr carries an explicit response code out of a handler.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// Classify maps an error to a response code and the message safe to show.
// Anything unrecognised is an opaque server error.
func Classify(err error) (int, string) {
	var ae *AErr
	if errors.As(err, &ae) {
		if ae.Code >= resp.CodeServerError {
			return ae.Code, resp.CodeMsgMap[ae.Code]
		}
		return ae.Code, ae.Error()
	}
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &mbe):
		return resp.CodeTooLarge, "request body too large"
	case errors.Is(err, domain.ErrNotFound):
		return resp.CodeNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return resp.CodeBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return resp.CodeUnauthorized, err.Error()
	case errors.Is(err, domain.ErrInactiveUser):
		return resp.CodeForbidden, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return resp.CodeTimeout, "timeout"
	}
	return resp.CodeServerError, "internal error"
}
