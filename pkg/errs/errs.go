// Package errs has error types shared by services and the way they are
// reported back to http clients.
package errs

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/haisum/smsinfo/pkg/logger"
	"github.com/haisum/smsinfo/pkg/response"
	"github.com/pkg/errors"
)

// ValidationError is returned when data validation fails
type ValidationError struct {
	Errors  map[string]string
	Message string
}

// Error implements Error interface
func (v *ValidationError) Error() string {
	if len(v.Errors) == 0 {
		return v.Message
	}
	keys := make([]string, 0, len(v.Errors))
	for k := range v.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var msgs []string
	for _, k := range keys {
		msgs = append(msgs, k+": "+v.Errors[k])
	}
	return v.Message + ": " + strings.Join(msgs, ", ")
}

// BadRequestError is sent when user sends invalid request
type BadRequestError struct {
	Message string
	Field   string
}

// Error implements Error interface
func (b BadRequestError) Error() string {
	return b.Message
}

// ErrHandler is function called to log errors anywhere in application
func ErrHandler(err error) {
	cause := errors.Cause(err)
	logger.Get().Error("type", fmt.Sprintf("%T", cause), "cause", cause, "error", fmt.Sprintf("%s", err), "stackTrace", fmt.Sprintf("%+v", err))
}

// ErrResponseHandler handles error returned to browser in case something goes wrong during request
func ErrResponseHandler(err error) (errorResponse error, errorCode int) {
	err = errors.Cause(err)
	resp := ErrorResponse{}
	switch e := err.(type) {
	case ErrorResponse:
		errorCode = http.StatusBadRequest
		resp = e
	case BadRequestError:
		errorCode = http.StatusBadRequest
		resp.Errors = append(resp.Errors, ResponseError{Message: e.Message, Field: e.Field, Type: ErrorTypeRequest})
	case *ValidationError:
		errorCode = http.StatusBadRequest
		resp.Errors = e.ResponseErrors()
	default:
		errorCode = http.StatusInternalServerError
		resp.Errors = append(resp.Errors, ResponseError{Message: "internal server error"})
	}
	resp.Ok = false
	errorResponse = resp
	return
}

// ResponseErrors converts validation errors to form errors, sorted by field
func (v *ValidationError) ResponseErrors() []ResponseError {
	var out []ResponseError
	for k, msg := range v.Errors {
		out = append(out, ResponseError{
			Type:    ErrorTypeForm,
			Message: msg,
			Field:   k,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// ErrorResponse is sent when Error happens in request
type ErrorResponse struct {
	Errors []ResponseError
	response.Response
}

// Error implements error interface
func (e ErrorResponse) Error() string {
	var errs []string
	for _, err := range e.Errors {
		errs = append(errs, err.Message)
	}
	return strings.Join(errs, ",")
}

// ResponseError is a single error
type ResponseError struct {
	Message string
	Type    string
	Field   string
}

// Error types represent possible values for ResponseError.Type field
const (
	ErrorTypeForm    string = "form"
	ErrorTypeRequest string = "request"
)
