package middleware

// ContextKey type for context keys
type ContextKey string

const (
	// Context keys
	ContextKeyRequestID ContextKey = "requestID"
	ContextKeyWoops     ContextKey = "woops"
	ContextKeySubject   ContextKey = "subject"
	ContextKeySentryHub ContextKey = "sentryHub"
)
