package message

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"github.com/haisum/smsinfo/pkg/errs"
	"github.com/haisum/smsinfo/pkg/logger"
	"github.com/haisum/smsinfo/pkg/smtext"
	"github.com/pkg/errors"
)

// Service is message service's interface
type Service interface {
	Info(ctx context.Context, request infoRequest) (infoResponse, error)
	Encodable(ctx context.Context, request encodableRequest) (encodableResponse, error)
}

type service struct {
	logger        logger.Logger
	maxTextLength int
}

// NewService returns a new message service. Texts longer than maxTextLength runes are rejected.
func NewService(logger logger.Logger, maxTextLength int) Service {
	return &service{
		logger, maxTextLength,
	}
}

// Info endpoint returns how text of request is going to be encoded
func (s *service) Info(ctx context.Context, request infoRequest) (infoResponse, error) {
	response := infoResponse{}
	if err := s.validateText(request.Text); err != nil {
		return response, err
	}
	info := smtext.GetInfo(*request.Text, request.Concatenated)
	if err := info.Validate(); err != nil {
		s.logger.Error("msg", "inconsistent encoding info", "error", err, "runes", utf8.RuneCountInString(*request.Text))
		return response, errors.Errorf("couldn't calculate encoding info: %s", err)
	}
	response.Info = info
	response.DataCoding = info.Encoding.DataCoding()
	return response, nil
}

// Encodable endpoint tells if text of request fits in GSM 7-bit alphabet
func (s *service) Encodable(ctx context.Context, request encodableRequest) (encodableResponse, error) {
	response := encodableResponse{}
	if err := s.validateText(request.Text); err != nil {
		return response, err
	}
	response.Encodable = smtext.IsGSMEncodable(*request.Text)
	return response, nil
}

func (s *service) validateText(text *string) error {
	if text == nil {
		return errs.BadRequestError{Message: "Text is required", Field: "Text"}
	}
	if n := utf8.RuneCountInString(*text); n > s.maxTextLength {
		return &errs.ValidationError{
			Errors:  map[string]string{"Text": fmt.Sprintf("Text can't be longer than %d characters, got %d", s.maxTextLength, n)},
			Message: "invalid request",
		}
	}
	return nil
}

type infoResponse struct {
	smtext.Info
	DataCoding pdutext.DataCoding
}

type encodableResponse struct {
	Encodable bool
}
