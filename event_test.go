package scriber

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvent_marshalOmitsTimeWhenUnset(t *testing.T) {
	b, err := json.Marshal(Event{
		Type: EventTypeRecordEvent,
		Info: map[string]any{"label": "x"},
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Equal(t, "record_event", raw["event_type"])
	require.NotContains(t, raw, "event_time")
}

func TestEvent_marshalKeepsTime(t *testing.T) {
	b, err := json.Marshal(Event{
		Type: EventTypeRecordPurchase,
		Info: map[string]any{"price": "0.99"},
		Time: "2015-08-21T22:25:12Z",
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Equal(t, "2015-08-21T22:25:12Z", raw["event_time"])
}

func TestEvent_roundTrip(t *testing.T) {
	events := []Event{
		{Type: EventTypeAppStart, Info: map[string]any{}},
		{Type: EventTypeRecordEvent, Info: map[string]any{"label": "tap"}},
		{Type: EventTypeSetUserInfo, Info: map[string]any{"name": "ada"}, Time: float64(1440193512)},
	}
	b, err := json.Marshal(events)
	require.NoError(t, err)

	var back []Event
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, events, back)
}

func TestEventTypes_complete(t *testing.T) {
	require.Len(t, EventTypes, 9)
	require.Contains(t, EventTypes, "record_original_purchase_receipt")
}
