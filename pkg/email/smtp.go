package email

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/Harsh-gitaccount/orivanta-website/config"
	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
)

const smtpTimeout = 30 * time.Second

// SMTPTransport sends outbound messages through the configured SMTP relay.
// Each Send dials, delivers one message and closes; the service sends at
// most two messages per request, so connection reuse buys nothing.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPTransport(cfg *config.Config) *SMTPTransport {
	return &SMTPTransport{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// IsConfigured reports whether enough settings are present to reach a relay.
func (t *SMTPTransport) IsConfigured() bool {
	return t.host != "" && t.username != "" && t.password != ""
}

func (t *SMTPTransport) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(t.port),
		mail.WithTimeout(smtpTimeout),
	}

	if t.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.username),
			mail.WithPassword(t.password),
		)
	}

	// Implicit TLS on 465, otherwise mandatory STARTTLS (587).
	if t.port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	return mail.NewClient(t.host, opts...)
}

// Send delivers one message and returns once the relay accepts it. No
// retries: a failure surfaces immediately to the caller.
func (t *SMTPTransport) Send(ctx context.Context, msg *domain.OutboundMessage) error {
	m := mail.NewMsg()

	if msg.FromName != "" {
		if err := m.FromFormat(msg.FromName, msg.From); err != nil {
			return fmt.Errorf("invalid from address: %w", err)
		}
	} else {
		if err := m.From(msg.From); err != nil {
			return fmt.Errorf("invalid from address: %w", err)
		}
	}

	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}

	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to address: %w", err)
		}
	}

	m.Subject(msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	}

	c, err := t.client()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// Verify dials the relay and authenticates without sending anything. Used
// once at startup to surface credential problems early.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	c, err := t.client()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp connection failed: %w", err)
	}

	return c.Close()
}
