package email

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
)

const maxAddressLength = 254

var ErrInvalidAddress = errors.New("invalid email address")

// Normalize validates a bare address ("user@example.com", no display name) and
// lower-cases its domain.
func Normalize(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" || len(address) > maxAddressLength {
		return "", ErrInvalidAddress
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Name != "" || parsed.Address != address {
		return "", ErrInvalidAddress
	}
	at := strings.LastIndexByte(address, '@')
	return address[:at] + "@" + strings.ToLower(address[at+1:]), nil
}

// DeriveNameFromEmail builds a display name from the local part when the identity
// provider supplied none.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
