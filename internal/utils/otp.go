package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpRange covers all 6-digit codes: [100000, 999999].
const (
	otpMin  = 100000
	otpSpan = 900000
)

// GenerateOTPCode returns a 6-digit numeric one-time passcode drawn
// uniformly from [100000, 999999].
//
// The code gates account access, so the value comes from crypto/rand
// rather than a seeded PRNG.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("error generating one-time passcode: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
