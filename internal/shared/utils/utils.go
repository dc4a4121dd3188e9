package utils

import (
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseFloatToDecimal converts an optional JSON float into a decimal,
// nil-safe for optional money fields.
func ParseFloatToDecimal(number *float64) *decimal.Decimal {
	if number == nil {
		return nil
	}
	d := decimal.NewFromFloat(*number)
	return &d
}

// ParseStringToUUID parses a string into a UUID, uuid.Nil on failure.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// IsValidUUID reports whether u is a well-formed UUID string.
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
