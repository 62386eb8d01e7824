package constants

// Context keys
const (
	ContextKeyIdentity = "identity"
)

// Session
const (
	AccessTokenCookie = "access_token"

	// DefaultTokenTTLMinutes is the expiry embedded in issued tokens.
	DefaultTokenTTLMinutes = 60

	// DefaultCookieMaxAgeSeconds is the lifetime of the session cookie.
	// Shorter than the token ttl: the browser drops the cookie first,
	// the token itself stays verifiable until its embedded expiry.
	DefaultCookieMaxAgeSeconds = 1800
)

// Validation
const (
	MinTodoPriority = 1
	MaxTodoPriority = 5
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
