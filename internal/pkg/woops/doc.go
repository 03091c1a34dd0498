// Package woops builds and sends standardized HTTP error responses.
//
// This package defines:
//   - Error, the canonical HTTP error with status, message, data and headers
//   - Normalize, which turns any error into an Error
//   - a catalog of constructors, one per well-known HTTP status
//   - Responder, a per-request value that sends an Error on a Response
//
// # Static and bound usage
//
// Constructors are plain functions that return an *Error, so handlers and
// services can propagate them like any other error:
//
//	return woops.NotFound("user not found", userID)
//
// A Responder exposes the same catalog as methods that send immediately:
//
//	w := woops.NewResponder(woops.NewFiberResponse(c), woops.Options{})
//	return w.NotFound("user not found", userID)
//
// # Wire format
//
// Every response body has the same shape:
//
//	{
//	  "statusCode": 404,
//	  "error": "Not Found",
//	  "errorMessage": "user not found",
//	  "data": "42"
//	}
//
// isDeveloperError, errorStack and origin are only present when they apply.
package woops
