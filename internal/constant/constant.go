package constant

// Constant package provides constants used throughout the application.

type ctxKey string

const (
	CorrelationIDKey ctxKey = "CorrelationID"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	// gin context keys
	ClaimsKey       = "claims"
	ValidatedBody   = "validatedBody"
	ValidatedParams = "validatedParams"
	ValidatedQuery  = "validatedQuery"
)
