package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

const restyTimeout = 80 * time.Second

// Resty backs the transport contract with the resty HTTP client. It is the
// preferred implementation outside managed platforms: it verifies server
// certificates and applies a request timeout.
type Resty struct {
	client *resty.Client
}

var _ Transport = (*Resty)(nil)

// NewResty builds a resty-backed transport.
func NewResty(o Options) *Resty {
	c := resty.New().
		SetTimeout(restyTimeout).
		SetRetryCount(0)
	if o.InsecureSkipVerify {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	} else if o.CABundle != "" {
		c.SetRootCertificate(o.CABundle)
	}
	return &Resty{client: c}
}

func (t *Resty) Request(ctx context.Context, method, rawurl string, headers map[string]string, body []byte) ([]byte, int, error) {
	req := t.client.R().SetContext(ctx).SetHeaders(headers)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(strings.ToUpper(method), rawurl)
	if err != nil {
		return nil, 0, wrapRestyError(err)
	}
	// resty does not treat non-2xx statuses as errors; the caller interprets
	// the status code.
	return resp.Body(), resp.StatusCode(), nil
}

func wrapRestyError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apierror.NewConnectionError(
			"Unexpected error communicating with Scriber. If this problem "+
				"persists, let us know at support@scriber.io.", urlErr)
	}
	return apierror.NewConnectionError(
		"Unexpected error communicating with Scriber. It looks like there's "+
			"probably a configuration issue locally. If this problem persists, "+
			"let us know at support@scriber.io.", err)
}
