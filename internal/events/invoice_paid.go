package events

import "time"

const InvoicePaidTopic = "biztime.invoice.paid.v1"

type InvoicePaidEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  int64     `json:"invoice_id"`
	CompCode   string    `json:"comp_code"`
	Amt        float64   `json:"amt"`
	PaidAt     time.Time `json:"paid_at"`
	OccurredAt time.Time `json:"occurred_at"`
}
