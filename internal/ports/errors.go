package ports

import "errors"

// Standard application-level errors.
// Adapters should wrap underlying infrastructure errors with these standard errors.
var (
	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrInvalidSymbol      = errors.New("invalid ticker symbol")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Credential Errors
	ErrCredentialMissing = errors.New("no API credential available")

	// Remote Data Source Errors
	ErrRequestFailed        = errors.New("market data request failed")
	ErrAuthenticationFailed = errors.New("market data authentication failed (check API token)")
	ErrRateLimited          = errors.New("API rate limit exceeded")
	ErrMalformedPayload     = errors.New("malformed market data payload")
	ErrDataIntegrity        = errors.New("market data payload failed validation")

	// Credential Store Errors
	ErrStoreUnavailable = errors.New("credential store unavailable")
	ErrStoreQueryFailed = errors.New("credential store query failed")
)
