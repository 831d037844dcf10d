package scriber

import "github.com/scriberio/scriber-go/pkg/apierror"

// Aliases so callers can match the SDK's error kinds with errors.As without
// importing a second package.
type (
	// APIError means the server was reached but rejected the request.
	APIError = apierror.APIError
	// APIConnectionError means the server could not be reached at all.
	APIConnectionError = apierror.APIConnectionError
	// AuthenticationError is a reserved error kind; not returned by the
	// event submission path.
	AuthenticationError = apierror.AuthenticationError
	// InvalidRequestError reports a precondition violation, with the
	// offending parameter named.
	InvalidRequestError = apierror.InvalidRequestError
	// CardError is a reserved error kind; not returned by the event
	// submission path.
	CardError = apierror.CardError
)
