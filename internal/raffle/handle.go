// Package raffle validates and submits raffle signups for the food court promotions.
package raffle

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyHandle is returned for blank input.
	ErrEmptyHandle = errors.New("raffle: empty instagram handle")
	// ErrInvalidHandle is returned when the handle has characters Instagram does not allow.
	ErrInvalidHandle = errors.New("raffle: invalid instagram handle")
	// ErrSubmissionFailed covers every transport or application failure of a submission.
	ErrSubmissionFailed = errors.New("raffle: submission failed")
	// ErrSubmissionInFlight is returned while another submission of the same form is pending.
	ErrSubmissionInFlight = errors.New("raffle: submission already in flight")
)

const (
	msgEmptyHandle      = "Por favor ingresa tu usuario de Instagram"
	msgInvalidHandle    = "Usuario inválido. Solo letras, números, punto y guion bajo"
	msgSubmissionFailed = "No pudimos registrar tu participación. Intenta nuevamente."
	msgInFlight         = "Ya estamos registrando tu participación. Espera un momento."
)

var handlePattern = regexp.MustCompile(`^@?[a-zA-Z0-9._]{1,30}$`)

// ValidateHandle trims raw and checks it against the Instagram username
// pattern. The returned value keeps a leading "@" when the user typed one.
func ValidateHandle(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyHandle
	}
	if !handlePattern.MatchString(trimmed) {
		return "", ErrInvalidHandle
	}
	return trimmed, nil
}

// UserMessage maps a raffle error to the Spanish text shown next to the form.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyHandle):
		return msgEmptyHandle
	case errors.Is(err, ErrInvalidHandle):
		return msgInvalidHandle
	case errors.Is(err, ErrSubmissionInFlight):
		return msgInFlight
	default:
		return msgSubmissionFailed
	}
}

// IsValidation reports whether err was raised before any network call.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyHandle) || errors.Is(err, ErrInvalidHandle)
}
