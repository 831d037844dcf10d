package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

// Fallback is the baseline transport, always constructible with no optional
// dependencies. It does not verify server certificates; that degradation is
// surfaced once, as a warning at construction, not per request.
type Fallback struct {
	client *http.Client
}

var _ Transport = (*Fallback)(nil)

// NewFallback builds the baseline transport.
func NewFallback(o Options) *Fallback {
	o.logger().Warn("scriber: falling back to the baseline HTTP transport, " +
		"which does not verify server certificates. For improved security, " +
		"use the resty transport.")
	return &Fallback{client: &http.Client{
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}}
}

func (t *Fallback) Request(ctx context.Context, method, rawurl string, headers map[string]string, body []byte) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, reader)
	if err != nil {
		return nil, 0, fallbackError(err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// An HTTP error status is a completed exchange here: the status code and
	// body are returned for the caller to interpret. Only failures below the
	// HTTP layer become connection errors.
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, fallbackError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fallbackError(err)
	}
	return data, resp.StatusCode, nil
}

func fallbackError(err error) error {
	return apierror.NewConnectionError(
		"Unexpected error communicating with Scriber. If this problem "+
			"persists, let us know at support@scriber.io.", err)
}
