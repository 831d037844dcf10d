// Package scriber provides support for reporting analytics events to
// [Scriber].
//
// Construct a [Client] with your API key and app id, then record events
// against it. Every call performs exactly one synchronous HTTPS request; the
// SDK never retries and never batches across calls.
//
// [Scriber]: https://scriber.io
package scriber

import (
	"context"
	"encoding/json"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scriberio/scriber-go/pkg/apierror"
)

const platform = "Web"

// Client records events to the Scriber API on behalf of one application.
//
// The credentials are immutable for the client's lifetime. A Client is safe
// for concurrent use provided its transport is.
type Client struct {
	options *Options
}

// New creates a new scriber client.
// An error is returned only if the configuration is invalid.
func New(o *Options) (*Client, error) {
	o, err := o.parse()
	if err != nil {
		return nil, err
	}
	return &Client{options: o}, nil
}

// RecordEvent records a single "record_event" event with the given label.
// See https://scriber.io/docs/#/?tab=Web for event details.
func (c *Client) RecordEvent(ctx context.Context, userID, label string) error {
	return c.RecordEvents(ctx, userID, []Event{{
		Type: EventTypeRecordEvent,
		Info: map[string]any{"label": label},
	}})
}

// RecordEventAt is RecordEvent with an explicit event timestamp, which may be
// numeric or a string depending on how the app models time.
func (c *Client) RecordEventAt(ctx context.Context, userID, label string, eventTime any) error {
	return c.RecordEvents(ctx, userID, []Event{{
		Type: EventTypeRecordEvent,
		Info: map[string]any{"label": label},
		Time: eventTime,
	}})
}

// RecordEvents records multiple events to Scriber in one request, preserving
// their order. userID and events must be non-empty; violations are reported
// before any network call is made.
//
// A nil return means the server accepted the batch (HTTP 200). Any other
// status code is returned as an *APIError, and a request that never completed
// as an *APIConnectionError.
func (c *Client) RecordEvents(ctx context.Context, userID string, events []Event) error {
	if userID == "" {
		return apierror.NewInvalidRequestError("scriber: userID must not be empty", "user_id")
	}
	if len(events) == 0 {
		return apierror.NewInvalidRequestError("scriber: events must not be empty", "events")
	}

	body, err := json.Marshal(&batchRequest{
		UserID:     userID,
		APIKey:     c.options.APIKey,
		AppID:      c.options.AppID,
		Platform:   platform,
		SDKVersion: sdkVersion(),
		Messages:   events,
	})
	if err != nil {
		return pkgerrors.Wrap(err, "scriber: serializing events")
	}

	headers := map[string]string{
		"Content-type": "application/json",
		"Accept":       "application/json",
	}
	respBody, status, err := c.options.Transport.Request(ctx, http.MethodPost, c.options.BaseURL, headers, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apierror.NewAPIError("There was a problem creating the data", status, respBody)
	}

	c.options.Logger.Debug("scriber: recorded events",
		zap.Int("count", len(events)),
		zap.String("user_id", userID))
	return nil
}
