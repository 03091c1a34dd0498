// Package handler contains the HTTP handlers of the woops demo server.
//
// Handlers report failures through the woops responder attached to each
// request. A handler either returns a *woops.Error, which the app error
// handler sends, or calls one of the responder's bound methods, which sends
// immediately.
//
// # Route Organization
//
//   - /health, /livez, /readyz, /version - probes (no error facade involved)
//   - /api/errors/* - catalog explorer
//   - /api/echo - request validation
//   - /api/items/* - read-only resource with an Allow header on other verbs
//   - /api/secure - bearer token protected
//   - /api/panic - recovered panic
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler
