package domain

import (
	"context"
	"time"
)

// ContactForm is the raw, untrusted contact request body. Fields may be
// absent or malformed; validation decides what is usable.
type ContactForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// ContactSubmission is a validated, normalized form entry. FirstName,
// LastName and Message are trimmed, Email is trimmed and lower-cased. It
// lives only long enough to compose and send two emails.
type ContactSubmission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Subject   string
	Message   string
}

// OutboundMessage is a fully composed email ready for transport. It is
// produced by the composer and consumed once by the dispatcher.
type OutboundMessage struct {
	From     string
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the form, composes the owner notification plus the
	// auto-reply, and dispatches them in that order.
	Submit(ctx context.Context, form *ContactForm) error
}

// MailTransport hands composed messages to the upstream mail relay. Send
// returns once the relay accepts the message; it does not guarantee final
// delivery to the recipient's mailbox.
type MailTransport interface {
	Send(ctx context.Context, msg *OutboundMessage) error
	// Verify checks connectivity and credentials against the relay.
	Verify(ctx context.Context) error
}

// MailComposer produces the two outbound messages for one submission.
// Implementations must be pure: same submission and timestamp, same output.
type MailComposer interface {
	OwnerNotification(sub *ContactSubmission, receivedAt time.Time) (*OutboundMessage, error)
	AutoReply(sub *ContactSubmission) (*OutboundMessage, error)
}
