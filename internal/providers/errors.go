package providers

import "errors"

// CredentialError indicates that the environment variable carrying a
// provider's API key is not set. It is returned from adapter constructors,
// never from Complete, so callers can halt before touching any input.
type CredentialError struct {
	Var string
}

func (e *CredentialError) Error() string {
	return e.Var + " environment variable is not set"
}

// IsCredentialError checks if an error is a missing-credential error.
func IsCredentialError(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// IsAuthError checks if an error is an authentication error from a provider
// response (401/403).
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}
