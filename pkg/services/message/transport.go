package message

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/haisum/smsinfo/pkg/errs"
	"github.com/haisum/smsinfo/pkg/logger"
	"github.com/haisum/smsinfo/pkg/response"
	"github.com/haisum/smsinfo/pkg/services/middleware"
	"github.com/pkg/errors"
)

// MakeHandler returns a http handler for the message service.
func MakeHandler(svc Service, log logger.Logger, opts []kithttp.ServerOption, responseEncoder kithttp.EncodeResponseFunc) http.Handler {
	infoEndpoint := middleware.LoggingMiddleware(log, "info")(makeInfoEndpoint(svc))
	encodableEndpoint := middleware.LoggingMiddleware(log, "encodable")(makeEncodableEndpoint(svc))

	r := mux.NewRouter()
	r.Handle("/message/v1/info", kithttp.NewServer(infoEndpoint, decodeInfoQuery, responseEncoder, opts...)).Methods("GET")
	r.Handle("/message/v1/info", kithttp.NewServer(infoEndpoint, decodeInfoBody, responseEncoder, opts...)).Methods("POST")
	r.Handle("/message/v1/encodable", kithttp.NewServer(encodableEndpoint, decodeEncodableQuery, responseEncoder, opts...)).Methods("GET")
	r.Handle("/message/v1/encodable", kithttp.NewServer(encodableEndpoint, decodeEncodableBody, responseEncoder, opts...)).Methods("POST")
	return r
}

type infoRequest struct {
	URL  string
	Text *string
	// Concatenated is true unless client sets it to false
	Concatenated bool
}

type encodableRequest struct {
	URL  string
	Text *string
}

// queryForm is what GET requests carry in their query string
type queryForm struct {
	Text         string `schema:"Text"`
	Concatenated bool   `schema:"Concatenated"`
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func makeInfoEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(infoRequest)
		v, err := svc.Info(ctx, req)
		if err != nil {
			return nil, err
		}
		resp := response.Success{Obj: v}
		resp.Request = req
		return resp, nil
	}
}

func makeEncodableEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(encodableRequest)
		v, err := svc.Encodable(ctx, req)
		if err != nil {
			return nil, err
		}
		resp := response.Success{Obj: v}
		resp.Request = req
		return resp, nil
	}
}

func decodeQuery(r *http.Request) (queryForm, *string, error) {
	form := queryForm{Concatenated: true}
	query := r.URL.Query()
	if err := queryDecoder.Decode(&form, query); err != nil {
		return form, nil, errs.BadRequestError{Message: errors.Wrap(err, "couldn't decode query").Error()}
	}
	if _, ok := query["Text"]; !ok {
		return form, nil, nil
	}
	return form, &form.Text, nil
}

func decodeInfoQuery(_ context.Context, r *http.Request) (interface{}, error) {
	form, text, err := decodeQuery(r)
	if err != nil {
		return nil, err
	}
	return infoRequest{
		URL:          r.URL.RequestURI(),
		Text:         text,
		Concatenated: form.Concatenated,
	}, nil
}

func decodeInfoBody(_ context.Context, r *http.Request) (interface{}, error) {
	request := infoRequest{Concatenated: true}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, errs.BadRequestError{Message: errors.Wrap(err, "couldn't decode request body").Error()}
	}
	request.URL = r.URL.RequestURI()
	return request, nil
}

func decodeEncodableQuery(_ context.Context, r *http.Request) (interface{}, error) {
	_, text, err := decodeQuery(r)
	if err != nil {
		return nil, err
	}
	return encodableRequest{URL: r.URL.RequestURI(), Text: text}, nil
}

func decodeEncodableBody(_ context.Context, r *http.Request) (interface{}, error) {
	var request encodableRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, errs.BadRequestError{Message: errors.Wrap(err, "couldn't decode request body").Error()}
	}
	request.URL = r.URL.RequestURI()
	return request, nil
}
