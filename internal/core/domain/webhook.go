package domain

import "time"

// WebhookDelivery is a single inbound callback as received. The signature is
// carried along but never checked.
type WebhookDelivery struct {
	ID         string
	Payload    []byte
	Signature  string
	ReceivedAt time.Time
}

// PayloadPrefix returns at most n characters of the payload.
func (d WebhookDelivery) PayloadPrefix(n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range string(d.Payload) {
		if count == n {
			return string(d.Payload[:i])
		}
		count++
	}
	return string(d.Payload)
}

// HasSignature reports whether the delivery carried a signature header value.
func (d WebhookDelivery) HasSignature() bool {
	return d.Signature != ""
}
