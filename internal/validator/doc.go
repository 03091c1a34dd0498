// Package validator provides struct validation for request bodies.
//
// It wraps go-playground/validator and reports failures as a list of
// field/message pairs, which handlers send as the data of a 422 response:
//
//	var errs validator.ValidationErrors
//	if err := validator.Validate(req); errors.As(err, &errs) {
//	    return woops.BadData("request validation failed", []validator.ValidationError(errs))
//	}
//
// The conversion drops the error method so the list is sent as is instead of
// as a single message.
package validator
