package transport

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

func TestResty_success(t *testing.T) {
	var seen http.Header
	url := mockServer(t, echoHandler(&seen))

	tr := NewResty(Options{})
	body, status, err := requestJSON(t, tr, url, []byte(`{"hello":"world"}`))
	require.NoError(t, err)
	require.Equal(t, 200, status)
	require.Equal(t, `{"hello":"world"}`, string(body))
	require.Equal(t, "application/json", seen.Get("Content-type"))
}

func TestResty_httpErrorIsNotATransportFailure(t *testing.T) {
	url := mockServer(t, func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusServiceUnavailable)
		rw.Write([]byte(`Oops`))
	})

	tr := NewResty(Options{})
	body, status, err := requestJSON(t, tr, url, []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, 503, status)
	require.Equal(t, "Oops", string(body))
}

func TestResty_connectionError(t *testing.T) {
	tr := NewResty(Options{})
	_, _, err := requestJSON(t, tr, closedPort(t), []byte(`{}`))

	var connErr *apierror.APIConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Contains(t, connErr.Message, "Unexpected error communicating with Scriber.")
	require.Contains(t, connErr.Message, "(Network error:")
}

func TestWrapRestyError_requestError(t *testing.T) {
	cause := &url.Error{Op: "Post", URL: "https://scriber.io/api/", Err: errors.New("connection reset")}
	err := wrapRestyError(cause)

	var connErr *apierror.APIConnectionError
	require.ErrorAs(t, err, &connErr)
	require.NotContains(t, connErr.Message, "configuration issue locally")
	require.True(t, errors.Is(err, cause))
}

func TestWrapRestyError_otherError(t *testing.T) {
	// Errors that did not come out of the request machinery point at a local
	// problem and get the configuration-issue message.
	err := wrapRestyError(errors.New("unsupported body type"))

	var connErr *apierror.APIConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Contains(t, connErr.Message, "configuration issue locally")
	require.Contains(t, connErr.Message, "(Network error: unsupported body type)")
}
