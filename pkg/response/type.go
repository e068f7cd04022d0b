package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the JSON body of every failed non-chat request.
type ErrorResp struct {
	Error string `json:"error"`
}

// ChatResp is the body of every /api/chat answer, success or failure.
type ChatResp struct {
	Reply     string `json:"reply"`
	Format    string `json:"format"`
	ReportURL string `json:"report_url,omitempty"`
}

// DateTime is a naive UTC timestamp with microseconds, the layout of
// Python's isoformat() the admin panel parses.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
