package transport

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

// The urlfetch service itself is only reachable from App Engine, so these
// tests cover the paths that run before the platform call.

func TestURLFetch_invalidURL(t *testing.T) {
	tr := NewURLFetch(Options{})
	_, _, err := tr.Request(context.Background(), http.MethodPost, "://not-a-url", nil, nil)

	var connErr *apierror.APIConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Contains(t, connErr.Message, "invalid URL")
}

func TestURLFetch_construction(t *testing.T) {
	tr := NewURLFetch(Options{InsecureSkipVerify: true})
	require.True(t, tr.allowInvalidCerts)
}
