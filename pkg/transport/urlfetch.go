package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/pkg/errors"
	"google.golang.org/appengine/urlfetch"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

// App Engine aborts requests after 60 seconds; stop short of that so the
// application still has time to handle a slow Scriber.
const urlfetchDeadline = 55 * time.Second

// maxURLFetchResponse caps how much of a response body is read.
const maxURLFetchResponse = 1 << 20

// URLFetch backs the transport contract with App Engine's urlfetch service.
// It is only usable with a request context derived from the App Engine
// runtime.
type URLFetch struct {
	allowInvalidCerts bool
}

var _ Transport = (*URLFetch)(nil)

// NewURLFetch builds an App Engine urlfetch transport.
func NewURLFetch(o Options) *URLFetch {
	return &URLFetch{allowInvalidCerts: o.InsecureSkipVerify}
}

func (t *URLFetch) Request(ctx context.Context, method, rawurl string, headers map[string]string, body []byte) ([]byte, int, error) {
	if _, err := url.ParseRequestURI(rawurl); err != nil {
		return nil, 0, apierror.NewConnectionError(
			"The Scriber library attempted to fetch an invalid URL ("+rawurl+"). "+
				"This is likely due to a bug in the Scriber Go bindings. Please "+
				"let us know at support@scriber.io.", err)
	}

	ctx, cancel := context.WithTimeout(ctx, urlfetchDeadline)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, reader)
	if err != nil {
		return nil, 0, apierror.NewConnectionError(
			"The Scriber library attempted to fetch an invalid URL ("+rawurl+"). "+
				"This is likely due to a bug in the Scriber Go bindings. Please "+
				"let us know at support@scriber.io.", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Transport: &urlfetch.Transport{
		Context:                       ctx,
		AllowInvalidServerCertificate: t.allowInvalidCerts,
	}}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, apierror.NewConnectionError(
			"There was a problem retrieving data from Scriber.", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxURLFetchResponse+1))
	if err != nil {
		return nil, 0, apierror.NewConnectionError(
			"Unexpected error communicating with Scriber. If this problem "+
				"persists, let us know at support@scriber.io.",
			pkgerrors.Wrap(err, "reading response body"))
	}
	if len(data) > maxURLFetchResponse {
		return nil, 0, apierror.NewConnectionError(
			"There was a problem receiving all of your data from Scriber. "+
				"This is likely due to a bug in Scriber. Please let us know at "+
				"support@scriber.io.", pkgerrors.New("response exceeds 1MB"))
	}
	return data, resp.StatusCode, nil
}
