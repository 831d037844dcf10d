package scriber

// The event types recognized by the Scriber API. The client passes these
// through without validation; unknown types are the server's concern.
const (
	EventTypeAppStart                      = "app_start"
	EventTypeAppBackground                 = "app_background"
	EventTypeAppForeground                 = "app_foreground"
	EventTypeAppTerminate                  = "app_terminate"
	EventTypeRecordEvent                   = "record_event"
	EventTypeRecordPurchase                = "record_purchase"
	EventTypeRecordOriginalPurchaseReceipt = "record_original_purchase_receipt"
	EventTypeSetUserInfo                   = "set_user_info"
	EventTypeLogout                        = "logout"
)

// EventTypes lists every event type recognized by the Scriber API.
var EventTypes = []string{
	EventTypeAppStart,
	EventTypeAppBackground,
	EventTypeAppForeground,
	EventTypeAppTerminate,
	EventTypeRecordEvent,
	EventTypeRecordPurchase,
	EventTypeRecordOriginalPurchaseReceipt,
	EventTypeSetUserInfo,
	EventTypeLogout,
}

// Event is one analytics event. Type is required; Info holds the
// type-specific fields; Time is an optional timestamp (numeric or string)
// and is omitted from the wire format when nil.
type Event struct {
	Type string         `json:"event_type"`
	Info map[string]any `json:"event_info"`
	Time any            `json:"event_time,omitempty"`
}

// batchRequest is the outbound envelope. Built fresh per call; Messages
// preserves insertion order end-to-end.
type batchRequest struct {
	UserID     string  `json:"user_id"`
	APIKey     string  `json:"api_key"`
	AppID      string  `json:"app_id"`
	Platform   string  `json:"platform"`
	SDKVersion string  `json:"sdk_version"`
	Messages   []Event `json:"messages"`
}
