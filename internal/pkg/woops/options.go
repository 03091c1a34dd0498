package woops

// Options configures how a Responder sends errors
type Options struct {
	// IncludeErrorStack adds the stack trace to every payload as errorStack
	IncludeErrorStack bool
	// OnSend is called after an error has been written to the response
	OnSend func(*Error)
}
