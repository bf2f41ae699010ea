// Package auth implements the static bearer-token gate in front of the agent endpoint.
package auth

import (
	"crypto/subtle"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// Verifier compares a presented credential against the configured token.
type Verifier struct {
	expected string
}

// NewVerifier creates a verifier for the expected token. An empty token is
// accepted here and reported as a configuration error on every Verify call.
func NewVerifier(expected string) *Verifier {
	return &Verifier{expected: expected}
}

// Verify returns nil only when presented equals the expected token exactly.
func (v *Verifier) Verify(presented string) error {
	if v.expected == "" {
		return domain.NewConfigurationError("API_BEARER_TOKEN environment variable not set")
	}
	if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(v.expected)) != 1 {
		return domain.NewAuthenticationError("Invalid authentication token")
	}
	return nil
}
