package phone

import (
	"net/http"
	"strings"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/apperror"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "BR"

var ErrInvalidPhone = apperror.New(
	apperror.CodeValidation,
	"Telefone inválido",
	http.StatusBadRequest,
)

// Normalize returns the E.164 digits of raw without the leading plus.
// Numbers without a country code are read as Brazilian.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", apperror.WithCause(ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}

	return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+"), nil
}

// NormalizePtr treats nil as "not provided".
func NormalizePtr(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	n, err := Normalize(*raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
