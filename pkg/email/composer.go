package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Harsh-gitaccount/orivanta-website/config"
	"github.com/Harsh-gitaccount/orivanta-website/internal/domain"
)

// subjectDisplayNames maps the service codes the form submits to their
// human-readable labels. Unknown codes pass through verbatim.
var subjectDisplayNames = map[string]string{
	"whatsapp":    "WhatsApp & Chatbot Automation",
	"voice":       "Voice AI",
	"leadgen":     "Lead Generation Platforms",
	"omnichannel": "Omnichannel Engagement",
	"general":     "General Inquiry",
	"demo":        "Full Demo - All Solutions",
}

// SubjectDisplay returns the label shown for a submitted service code.
func SubjectDisplay(code string) string {
	if label, ok := subjectDisplayNames[code]; ok {
		return label
	}
	return code
}

// Timestamps in the owner notification are rendered in the business's local
// time. Falls back to a fixed IST offset if the zone database is unavailable.
var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}()

const timestampLayout = "02/01/2006, 3:04:05 pm"

// ownerTemplate renders the owner notification. All user-supplied fields go
// through html/template, which escapes them for HTML by construction.
var ownerTemplate = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { padding: 20px; background: #f9f9f9; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; padding: 10px; background: white; border-radius: 4px; }
        .label { font-weight: bold; color: #667eea; margin-bottom: 5px; }
        .value { color: #333; }
        .footer { text-align: center; padding: 15px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Contact Form Submission - Orivanta</h2>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.FirstName}} {{.LastName}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            {{if .Phone}}<div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>{{end}}
            {{if .Company}}<div class="field">
                <div class="label">Company:</div>
                <div class="value">{{.Company}}</div>
            </div>{{end}}
            <div class="field">
                <div class="label">AI Solution Interest:</div>
                <div class="value">{{.SubjectDisplay}}</div>
            </div>
            <div class="field">
                <div class="label">Current Challenges:</div>
                <div class="value">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Received at: {{.ReceivedAt}}</p>
            <p>From: Orivanta Contact Form</p>
        </div>
    </div>
</body>
</html>`))

// autoReplyTemplate greets the submitter by first name; it depends on
// nothing else in the submission.
var autoReplyTemplate = template.Must(template.New("autoreply").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { padding: 20px; background: white; border-radius: 0 0 8px 8px; }
        .footer { text-align: center; padding: 15px; font-size: 14px; color: #666; background: #f5f5f5; }
        .highlight { color: #667eea; font-weight: bold; }
        ul { padding-left: 20px; }
        li { margin-bottom: 8px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Thank You for Starting the Conversation!</h2>
        </div>
        <div class="content">
            <p>Hi <span class="highlight">{{.FirstName}}</span>,</p>
            <p>Thank you for reaching out to Orivanta! We've received your message and appreciate you taking the time to connect with us.</p>
            <p>Whether you're interested in collaboration, exploring partnerships, or have questions about our services, we're excited to start this conversation.</p>
            <p><strong>What happens next?</strong></p>
            <ul>
                <li>We'll carefully review your message and requirements</li>
                <li>Our team will reach out within 24 hours to discuss next steps</li>
                <li>We'll explore how we can work together effectively</li>
                <li>Schedule a follow-up call if needed</li>
            </ul>
            <p>We value meaningful connections and look forward to exploring opportunities together.</p>
            <p>Best regards,<br><strong>The Orivanta Team</strong></p>
        </div>
        <div class="footer">
            <p><strong>Orivanta - Digital Innovation Partners</strong></p>
            <p>Email: support@orivanta.in | Phone: +91 94734 21755</p>
        </div>
    </div>
</body>
</html>`))

const ownerTextTemplate = `
New Contact Form Submission:

Name: %s %s
Email: %s
Phone: %s
Company: %s
AI Solution Interest: %s
Current Challenges: %s

Received: %s
`

type ownerTemplateData struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        string
	SubjectDisplay string
	Message        string
	ReceivedAt     string
}

// Composer builds the two outbound messages for one submission. It performs
// no I/O; output is deterministic given the submission and timestamp.
type Composer struct {
	from     string
	fromName string
	to       string
}

func NewComposer(cfg *config.Config) *Composer {
	return &Composer{
		from:     cfg.EmailFrom,
		fromName: cfg.EmailFromName,
		to:       cfg.EmailTo,
	}
}

// OwnerNotification composes the message relayed to the business inbox,
// with the submitter's address as Reply-To.
func (c *Composer) OwnerNotification(sub *domain.ContactSubmission, receivedAt time.Time) (*domain.OutboundMessage, error) {
	subjectDisplay := SubjectDisplay(sub.Subject)
	received := receivedAt.In(istLocation).Format(timestampLayout)

	var body bytes.Buffer
	err := ownerTemplate.Execute(&body, ownerTemplateData{
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Company:        sub.Company,
		SubjectDisplay: subjectDisplay,
		Message:        sub.Message,
		ReceivedAt:     received,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render owner notification: %w", err)
	}

	subject := fmt.Sprintf("New Lead: %s %s (%s)", sub.FirstName, sub.LastName, subjectDisplay)
	if sub.Company != "" {
		subject = fmt.Sprintf("New Lead: %s - %s %s (%s)", sub.Company, sub.FirstName, sub.LastName, subjectDisplay)
	}

	text := fmt.Sprintf(ownerTextTemplate,
		sub.FirstName, sub.LastName,
		sub.Email,
		orPlaceholder(sub.Phone),
		orPlaceholder(sub.Company),
		subjectDisplay,
		sub.Message,
		received,
	)

	return &domain.OutboundMessage{
		From:     c.from,
		FromName: c.fromName,
		To:       c.to,
		ReplyTo:  sub.Email,
		Subject:  subject,
		HTMLBody: body.String(),
		TextBody: text,
	}, nil
}

// AutoReply composes the courtesy reply sent back to the submitter.
func (c *Composer) AutoReply(sub *domain.ContactSubmission) (*domain.OutboundMessage, error) {
	var body bytes.Buffer
	err := autoReplyTemplate.Execute(&body, struct{ FirstName string }{FirstName: sub.FirstName})
	if err != nil {
		return nil, fmt.Errorf("failed to render auto-reply: %w", err)
	}

	return &domain.OutboundMessage{
		From:     c.from,
		FromName: "Orivanta Team",
		To:       sub.Email,
		Subject:  "Thank you for contacting Orivanta - We'll be in touch soon!",
		HTMLBody: body.String(),
	}, nil
}

func orPlaceholder(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
