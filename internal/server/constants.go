package server

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized     = "Unauthorized"
	ErrMsgDuplicateRequest = "Duplicate request ignored"
)

// HTTP header names
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
)

// Header redaction marker
const RedactedValue = "[REDACTED]"

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/version",
	"/metrics",
}
