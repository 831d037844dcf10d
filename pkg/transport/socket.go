package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

const (
	socketConnectTimeout = 30 * time.Second
	socketTotalTimeout   = 80 * time.Second
)

// Socket backs the transport contract with a hand-configured net/http stack:
// an explicit connect timeout, an overall request timeout, and fine-grained
// classification of the network errors that come back.
type Socket struct {
	client *http.Client
}

var _ Transport = (*Socket)(nil)

// NewSocket builds a socket transport. It fails only when a CA bundle path
// was given but could not be loaded.
func NewSocket(o Options) (*Socket, error) {
	tlsConf := &tls.Config{}
	if o.InsecureSkipVerify {
		tlsConf.InsecureSkipVerify = true
	} else if o.CABundle != "" {
		pem, err := os.ReadFile(o.CABundle)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "scriber: reading CA bundle")
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, pkgerrors.Errorf("scriber: no certificates found in %s", o.CABundle)
		}
		tlsConf.RootCAs = pool
	}

	dialer := &net.Dialer{Timeout: socketConnectTimeout}
	return &Socket{client: &http.Client{
		Timeout: socketTotalTimeout,
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			DialContext:     dialer.DialContext,
			TLSClientConfig: tlsConf,
		},
	}}, nil
}

func (t *Socket) Request(ctx context.Context, method, rawurl string, headers map[string]string, body []byte) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, reader)
	if err != nil {
		return nil, 0, classifySocketError(err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, classifySocketError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, classifySocketError(err)
	}
	return data, resp.StatusCode, nil
}

// classifySocketError mirrors the useful distinctions at this level: failures
// to reach the host, failures to trust the host, and everything else.
func classifySocketError(err error) error {
	switch {
	case isConnectFailure(err):
		return apierror.NewConnectionError(
			"Could not connect to Scriber. Please check your internet "+
				"connection and try again. If this problem persists, you should "+
				"check Scriber's service status at https://twitter.com/scriber, "+
				"or let us know at support@scriber.io.", err)
	case isCertFailure(err):
		return apierror.NewConnectionError(
			"Could not verify Scriber's SSL certificate. Please make sure "+
				"that your network is not intercepting certificates. If this "+
				"problem persists, let us know at support@scriber.io.", err)
	default:
		return apierror.NewConnectionError(
			"Unexpected error communicating with Scriber. If this problem "+
				"persists, let us know at support@scriber.io.", err)
	}
}

func isConnectFailure(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isCertFailure(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalidCert      x509.CertificateInvalidError
		recordHeader     tls.RecordHeaderError
	)
	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostname) ||
		errors.As(err, &invalidCert) ||
		errors.As(err, &recordHeader)
}
