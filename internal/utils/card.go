package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// CardGenerator produces random card numbers and security codes.
type CardGenerator struct{}

// CardNumber generates a vendor-style card number: a "52" prefix followed by
// random digits, grouped in fours ("5234-1234-5678-9012").
func (CardGenerator) CardNumber() (string, error) {
	digits, err := randomDigits("52", 16)
	if err != nil {
		return "", fmt.Errorf("failed to generate card number: %w", err)
	}

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		groups = append(groups, digits[i:i+4])
	}
	return strings.Join(groups, "-"), nil
}

// SecurityCode generates a 3-digit security code
func (CardGenerator) SecurityCode() (string, error) {
	code, err := randomDigits("", 3)
	if err != nil {
		return "", fmt.Errorf("failed to generate security code: %w", err)
	}
	return code, nil
}

// randomDigits generates a digit string of the given length starting with prefix
func randomDigits(prefix string, length int) (string, error) {
	if length < len(prefix) || length > 19 {
		return "", fmt.Errorf("invalid digit string length: %d", length)
	}

	raw := make([]byte, length-len(prefix))
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(prefix)
	for _, b := range raw {
		builder.WriteByte(b%10 + '0')
	}
	return builder.String(), nil
}
