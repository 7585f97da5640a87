// Package smtext works out how a text will be encoded when sent as SMS:
// GSM 7-bit or UCS-2, how many septets and octets it takes, how many
// parts it is split into and how much room is left in the last part.
package smtext

import (
	"math"
	"unicode/utf16"

	"github.com/fiorix/go-smpp/smpp/pdu/pdutext"
	"github.com/haisum/smsinfo/pkg/charset"
)

// Sizes of an SMS part. These are part of the external contract and must not change.
const (
	// OctetsPerPart is the user data size of a single SMS in bytes
	OctetsPerPart = 140
	// SeptetsPerPart is the user data size of a single SMS in septets
	SeptetsPerPart = 160
	// HeaderOctets is the size of the concatenation UDH carried by every part of a multipart SMS
	HeaderOctets = 6
	// HeaderSeptets is HeaderOctets once packed at 7 bits
	HeaderSeptets = 7
	// BasicSeptets is the cost of a default alphabet character
	BasicSeptets = 1
	// ExtendedSeptets is the cost of an extension table character, escape included
	ExtendedSeptets = 2
	// UCS2Octets is the cost of a UCS-2 code unit
	UCS2Octets = 2
)

// IsGSMEncodable returns true if every character of text is in the GSM 7-bit
// default alphabet or its extension table. Empty text is encodable.
func IsGSMEncodable(text string) bool {
	for _, r := range text {
		if !charset.IsBasic(r) && !charset.IsExtended(r) {
			return false
		}
	}
	return true
}

// Calculate returns encoding info of text sent as a concatenated SMS.
func Calculate(text string) Info {
	return GetInfo(text, true)
}

// GetInfo calculates how text is going to be encoded.
// If concatenated is false, parts are counted as independent messages without UDH.
func GetInfo(text string, concatenated bool) Info {
	if len(text) == 0 {
		return Info{Parts: 1, Encoding: GSM7}
	}
	enc := GSM7
	septets := 0
	for _, r := range text {
		n, ok := charset.Septets(r)
		if !ok {
			enc = UCS2
			septets = -1
			break
		}
		septets += n
	}

	var octets int
	if enc == GSM7 {
		octets = ceilDiv(mul(septets, 7), 8)
	} else {
		octets = mul(utf16Len(text), UCS2Octets)
	}

	parts := 1
	if octets > OctetsPerPart {
		if concatenated {
			parts = ceilDiv(octets, OctetsPerPart-HeaderOctets)
			octets = add(octets, mul(parts, HeaderOctets))
			if enc == GSM7 {
				septets = add(septets, mul(parts, HeaderSeptets))
			}
		} else {
			parts = ceilDiv(octets, OctetsPerPart)
		}
	}

	var left int
	if enc == GSM7 {
		left = mul(parts, SeptetsPerPart) - septets
	} else {
		left = (mul(parts, OctetsPerPart) - octets) / UCS2Octets
	}
	return Info{
		Parts:     parts,
		Septets:   septets,
		Octets:    octets,
		CharsLeft: left,
		Encoding:  enc,
	}
}

// Total counts number of messages in one text string
func Total(text string) int {
	return Calculate(text).Parts
}

// Codec returns go-smpp text codec that should be used to submit text
func Codec(text string) pdutext.Codec {
	if IsGSMEncodable(text) {
		return pdutext.GSM7(text)
	}
	return pdutext.UCS2(text)
}

// utf16Len counts UCS-2 code units; runes outside the BMP take a surrogate pair.
func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}

// ceilDiv divides rounding up. b must be positive.
func ceilDiv(a, b int) int {
	return add(a, b-1) / b
}

// add and mul saturate at math.MaxInt instead of wrapping. Operands are never negative here.
func add(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}
