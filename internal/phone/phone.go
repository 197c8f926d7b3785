// Package phone normalises UK phone numbers and builds the call and WhatsApp
// links shown on the site.
package phone

import (
	"errors"
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "GB"

// ErrInvalidNumber is returned for input that is not a valid phone number.
var ErrInvalidNumber = errors.New("invalid phone number")

func parse(input string) (*phonenumbers.PhoneNumber, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrInvalidNumber
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return nil, ErrInvalidNumber
	}

	if !phonenumbers.IsValidNumber(number) {
		return nil, ErrInvalidNumber
	}
	return number, nil
}

// E164 formats a number as E.164, e.g. "+442079460321".
func E164(input string) (string, error) {
	number, err := parse(input)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(number, phonenumbers.E164), nil
}

// NormalizeE164 formats a number to E.164. If parsing fails it returns the
// trimmed input.
func NormalizeE164(input string) string {
	out, err := E164(input)
	if err != nil {
		return strings.TrimSpace(input)
	}
	return out
}

// Display formats a number the way a UK visitor would dial it, e.g.
// "020 7946 0321".
func Display(input string) string {
	number, err := parse(input)
	if err != nil {
		return strings.TrimSpace(input)
	}
	return phonenumbers.Format(number, phonenumbers.NATIONAL)
}

// TelLink returns a tel: URI for the number.
func TelLink(input string) (string, error) {
	e164, err := E164(input)
	if err != nil {
		return "", err
	}
	return "tel:" + e164, nil
}

// WhatsAppLink returns a wa.me click-to-chat URL. The optional text pre-fills
// the first message.
func WhatsAppLink(input, text string) (string, error) {
	e164, err := E164(input)
	if err != nil {
		return "", err
	}
	link := "https://wa.me/" + strings.TrimPrefix(e164, "+")
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link, nil
}
