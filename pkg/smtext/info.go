package smtext

import (
	"fmt"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"github.com/haisum/smsinfo/pkg/errs"
	"github.com/pkg/errors"
)

// Encoding is the character encoding a SMS is sent with
type Encoding uint8

// Possible values of Encoding
const (
	// GSM7 is the GSM 03.38 7-bit default alphabet with its extension table
	GSM7 Encoding = iota
	// UCS2 is 16-bit Unicode, used when text has characters outside GSM7
	UCS2
)

// String implements fmt.Stringer
func (e Encoding) String() string {
	switch e {
	case GSM7:
		return "gsm7"
	case UCS2:
		return "ucs2"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// MarshalText implements encoding.TextMarshaler
func (e Encoding) MarshalText() ([]byte, error) {
	if e != GSM7 && e != UCS2 {
		return nil, errors.Errorf("unknown encoding %d", uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Encoding) UnmarshalText(b []byte) error {
	switch string(b) {
	case "gsm7":
		*e = GSM7
	case "ucs2":
		*e = UCS2
	default:
		return errors.Errorf("unknown encoding %q", b)
	}
	return nil
}

// DataCoding returns SMPP data_coding value for encoding
func (e Encoding) DataCoding() pdutext.DataCoding {
	if e == UCS2 {
		return pdutext.UCS2Type
	}
	return pdutext.DefaultType
}

// Info tells how a text is going to be encoded in SMS.
// Counts include concatenation headers once the text needs more than one part.
type Info struct {
	// Parts is number of SMS needed
	Parts int
	// Septets used, this can be seen as "characters used". -1 when Encoding is UCS2.
	Septets int
	// Octets (bytes) used
	Octets int
	// CharsLeft is room left in the last part. For GSM7 it's counted in septets,
	// so an extension character takes two of them.
	CharsLeft int
	Encoding  Encoding
}

// Validate checks that info is consistent. It returns *errs.ValidationError with
// a message for every broken field.
func (i Info) Validate() error {
	vErr := &errs.ValidationError{
		Errors:  make(map[string]string),
		Message: "invalid encoding info",
	}
	if i.Parts < 1 {
		vErr.Errors["Parts"] = fmt.Sprintf("parts must be at least 1, got %d", i.Parts)
	}
	if i.Octets < 0 {
		vErr.Errors["Octets"] = fmt.Sprintf("octets can't be negative, got %d", i.Octets)
	}
	if i.CharsLeft < 0 {
		vErr.Errors["CharsLeft"] = fmt.Sprintf("chars left can't be negative, got %d", i.CharsLeft)
	}
	switch i.Encoding {
	case GSM7:
		if i.Septets < 0 {
			vErr.Errors["Septets"] = fmt.Sprintf("septets can't be negative for gsm7, got %d", i.Septets)
		}
	case UCS2:
		if i.Septets != -1 {
			vErr.Errors["Septets"] = fmt.Sprintf("septets must be -1 for ucs2, got %d", i.Septets)
		}
	default:
		vErr.Errors["Encoding"] = fmt.Sprintf("unknown encoding %d", uint8(i.Encoding))
	}
	if len(vErr.Errors) > 0 {
		return vErr
	}
	return nil
}
