// Package transport provides the HTTP transports used by the scriber SDK to
// reach the collection API.
//
// Four interchangeable implementations share one contract: issue a single
// request and either return the response body with its status code, or return
// a normalized [apierror.APIConnectionError]. A non-2xx response is a
// successful transport exchange; interpreting the status code is the
// caller's job.
//
// [Default] picks an implementation once per process, preferring the managed
// platform client when running on App Engine and the resty client everywhere
// else. The socket and fallback transports remain available through their
// constructors for environments where neither preference is acceptable.
package transport

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/appengine"
)

// Transport issues a single HTTP exchange against the scriber API.
//
// Implementations must be safe for concurrent use and must not retry.
type Transport interface {
	// Request performs one round trip and returns the response body and
	// status code. Any failure to complete the exchange is returned as an
	// *apierror.APIConnectionError.
	Request(ctx context.Context, method, url string, headers map[string]string, body []byte) ([]byte, int, error)
}

// Options configure a transport constructor.
type Options struct {
	// InsecureSkipVerify disables server certificate verification.
	InsecureSkipVerify bool
	// CABundle is an optional path to a PEM certificate bundle used instead
	// of the system pool when verification is enabled.
	CABundle string
	// Logger receives selection and security warnings.
	// (defaults to a no-op logger)
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

var (
	defaultOnce      sync.Once
	defaultTransport Transport
)

// Default returns the process-wide transport, constructing it on first call.
// Later calls return the same instance and ignore their Options.
func Default(o Options) Transport {
	defaultOnce.Do(func() {
		log := o.logger()
		if appengine.IsAppEngine() {
			log.Debug("scriber: selected urlfetch transport")
			defaultTransport = NewURLFetch(o)
			return
		}
		log.Debug("scriber: selected resty transport")
		defaultTransport = NewResty(o)
	})
	return defaultTransport
}
