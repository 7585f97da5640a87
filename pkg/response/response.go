package response

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/haisum/smsinfo/pkg/logger"
	"github.com/pkg/errors"
)

// Response represents a http response
type Response struct {
	Request interface{}
	Ok      bool
}

// Success represents json response we give to requests
type Success struct {
	Obj interface{} `json:"Response"`
	Response
}

type encoder struct {
	log                logger.Logger
	errFunc            func(err error)
	errResponseHandler func(err error) (errorResponse error, errorCode int)
}

// NewEncoder returns new encoder which can log and call a subscriber errFunc whenever error happens in services
func NewEncoder(log logger.Logger, errFunc func(err error), errResponseHandler func(err error) (errorResponse error, errorCode int)) *encoder {
	return &encoder{log, errFunc, errResponseHandler}
}

// EncodeSuccess encodes a success response from services and sets appropriate headers
func (r *encoder) EncodeSuccess(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp, ok := response.(Success)
	if !ok {
		return errors.Errorf("couldn't understand given success response %T", response)
	}
	resp.Ok = true
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(resp)
}

// EncodeError encodes an error response from services and sets appropriate headers
func (r *encoder) EncodeError(ctx context.Context, err error, w http.ResponseWriter) {
	errorResponse, errorCode := r.errResponseHandler(err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errorCode)
	encErr := json.NewEncoder(w).Encode(errorResponse)
	if encErr != nil {
		r.log.Error("msg", "couldn't encode error response", "error", encErr)
		err = errors.Wrap(err, encErr.Error())
	}
	// pass error to handler
	r.errFunc(err)
}
