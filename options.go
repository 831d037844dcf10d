package scriber

import (
	"fmt"
	"net/url"
	"os"

	"go.uber.org/zap"

	"github.com/scriberio/scriber-go/pkg/transport"
)

// Options configure a scriber [Client].
type Options struct {
	// APIKey authenticates your app with the Scriber API.
	// (defaults to the SCRIBER_API_KEY environment variable)
	APIKey string
	// AppID identifies your app, as shown on the Scriber dashboard.
	// (defaults to the SCRIBER_APP_ID environment variable)
	AppID string
	// BaseURL is where to find the Scriber API
	// (defaults to the SCRIBER_BASE_URL environment variable,
	// or "https://scriber.io/api/" if not set)
	BaseURL string

	// Transport performs the HTTP exchanges. When nil, the process-wide
	// default is selected once via transport.Default.
	Transport transport.Transport

	// InsecureSkipVerify disables server certificate verification on the
	// default transport. Ignored when Transport is set.
	InsecureSkipVerify bool
	// CABundle is an optional PEM bundle path for the default transport.
	// Ignored when Transport is set.
	CABundle string

	// Logger receives debug output and security warnings.
	// (defaults to a no-op logger)
	Logger *zap.Logger
}

func (o *Options) parse() (*Options, error) {
	if o == nil {
		o = &Options{}
	} else {
		copy := *o
		o = &copy
	}

	if o.APIKey == "" {
		o.APIKey = os.Getenv("SCRIBER_API_KEY")
	}
	if o.APIKey == "" {
		return nil, fmt.Errorf("scriber: missing APIKey (SCRIBER_API_KEY not in environment)")
	}

	if o.AppID == "" {
		o.AppID = os.Getenv("SCRIBER_APP_ID")
	}
	if o.AppID == "" {
		return nil, fmt.Errorf("scriber: missing AppID (SCRIBER_APP_ID not in environment)")
	}

	if o.BaseURL == "" {
		o.BaseURL = os.Getenv("SCRIBER_BASE_URL")
	}
	if o.BaseURL == "" {
		o.BaseURL = "https://scriber.io/api/"
	}
	if u, err := url.Parse(o.BaseURL); err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return nil, fmt.Errorf("scriber: invalid BaseURL: %w", err)
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if o.Transport == nil {
		o.Transport = transport.Default(transport.Options{
			InsecureSkipVerify: o.InsecureSkipVerify,
			CABundle:           o.CABundle,
			Logger:             o.Logger,
		})
	}

	return o, nil
}
