package models

// ResponseMetric is one logged automated or manual reply with the time it
// took to produce it.
type ResponseMetric struct {
	ID                  int     `json:"metric_id,omitempty"`
	CustomerID          FlexID  `json:"customer_id,omitempty"`
	MessageID           string  `json:"message_id,omitempty"`
	MessageType         string  `json:"message_type,omitempty"`
	ResponseType        string  `json:"response_type,omitempty"`
	ResponseTimeSeconds float64 `json:"response_time_seconds"`
	CreatedAt           string  `json:"created_at,omitempty"`
}
