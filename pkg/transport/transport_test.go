package transport

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// boot up a server on an unused local port and return
// http://localhost:<port>
func mockServer(t *testing.T, h http.HandlerFunc) string {
	listener, err := net.Listen("tcp", "localhost:")
	require.NoError(t, err)
	t.Cleanup(func() {
		listener.Close()
	})

	go http.Serve(listener, h)
	return "http://" + listener.Addr().String()
}

// closedPort returns a localhost URL whose port refuses connections.
func closedPort(t *testing.T) string {
	listener, err := net.Listen("tcp", "localhost:")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return "http://" + addr
}

// echoHandler replies 200 with the request body and records the headers seen.
func echoHandler(seen *http.Header) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.Header.Clone()
		}
		body, _ := io.ReadAll(r.Body)
		rw.Write(body)
	}
}

func TestDefault_isEvaluatedOnce(t *testing.T) {
	first := Default(Options{})
	second := Default(Options{InsecureSkipVerify: true})
	require.Same(t, first, second)
}

func TestDefault_prefersResty(t *testing.T) {
	// Not running on App Engine, so the selector lands on resty.
	require.IsType(t, &Resty{}, Default(Options{}))
}

func TestOptions_loggerDefaultsToNop(t *testing.T) {
	require.NotNil(t, Options{}.logger())
}

func requestJSON(t *testing.T, tr Transport, url string, body []byte) ([]byte, int, error) {
	t.Helper()
	return tr.Request(context.Background(), http.MethodPost, url, map[string]string{
		"Content-type": "application/json",
		"Accept":       "application/json",
	}, body)
}
