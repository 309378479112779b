package events

import "time"

const InvoiceCreatedTopic = "biztime.invoice.lifecycle.v1"

type InvoiceCreatedEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  int64     `json:"invoice_id"`
	CompCode   string    `json:"comp_code"`
	Amt        float64   `json:"amt"`
	OccurredAt time.Time `json:"occurred_at"`
}
