package fixture

import (
	"fmt"
	"strconv"

	domainerrors "civic/internal/domain/errors"

	"github.com/nyaruka/phonenumbers"
)

const (
	phoneCandidateMin = 2000000000
	phoneCandidateMax = 9999999999
	phoneRegion       = "US"
)

// PhoneNumber draws 10 digit candidates until one is a valid North American number.
// It gives up after the configured number of attempts.
func (g *Generator) PhoneNumber() (string, error) {
	for range g.phoneMaxAttempts {
		n := phoneCandidateMin + g.rng.Int64N(phoneCandidateMax-phoneCandidateMin+1)
		candidate := strconv.FormatInt(n, 10)
		if g.validPhone(candidate) {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrPhoneNumberExhausted.
		WithDetails(fmt.Sprintf("after %d attempts", g.phoneMaxAttempts))
}

// isValidNANP reports whether number parses as a valid US number under numbering plan rules.
func isValidNANP(number string) bool {
	parsed, err := phonenumbers.Parse(number, phoneRegion)
	if err != nil {
		return false
	}

	return phonenumbers.IsValidNumber(parsed)
}
