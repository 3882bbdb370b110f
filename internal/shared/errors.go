package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Credential acquisition errors. ErrMissingSecret and ErrConsentDeclined
	// wrap ErrCredentialInvalid so callers can branch on the specific cause
	// while still matching the general one.
	ErrCredentialInvalid = fmt.Errorf("no usable credential")
	ErrMissingSecret     = fmt.Errorf("%w: client secret file not found", ErrCredentialInvalid)
	ErrConsentDeclined   = fmt.Errorf("%w: user declined consent", ErrCredentialInvalid)
	ErrRefreshFailed     = fmt.Errorf("token refresh failed")
	ErrNoRefreshToken    = fmt.Errorf("no refresh token available")

	// Session errors
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// Remote API errors
	ErrAPIRequest  = fmt.Errorf("API request failed")
	ErrNotFound    = fmt.Errorf("resource not found")
	ErrPartialMove = fmt.Errorf("video copied to target but not removed from source")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
