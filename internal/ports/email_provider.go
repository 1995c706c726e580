package ports

import "context"

// EmailRequest is a single outbound message addressed to exactly one recipient
type EmailRequest struct {
	To       string
	Subject  string
	HTMLBody string
}

// DeliveryResult carries the provider's acknowledgement of a send
type DeliveryResult struct {
	Success   bool
	MessageID string
	Provider  string
}

// EmailProvider defines the contract for transactional email delivery.
// Implementations make a single attempt per call and never retry.
type EmailProvider interface {
	Send(ctx context.Context, req EmailRequest) (DeliveryResult, error)
	Name() string
}
