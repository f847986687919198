package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"seminarly/models"
)

// Message is a rendered email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

type templateSet struct {
	subject string
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

const textFooter = `

Venue: {{.Seminar.Venue}}
Date: {{.Seminar.Date}}, {{.Seminar.StartTime}}-{{.Seminar.EndTime}}
Booking reference: {{.Booking.ID}}
`

const htmlFooter = `
<p><strong>Venue:</strong> {{.Seminar.Venue}}<br>
<strong>Date:</strong> {{.Seminar.Date}}, {{.Seminar.StartTime}}-{{.Seminar.EndTime}}<br>
<strong>Booking reference:</strong> {{.Booking.ID}}</p>
`

func newTemplateSet(name, subject, text, html string) templateSet {
	return templateSet{
		subject: subject,
		text:    texttemplate.Must(texttemplate.New(name).Parse(text + textFooter)),
		html:    htmltemplate.Must(htmltemplate.New(name).Parse(html + htmlFooter)),
	}
}

var templates = map[models.NotificationTemplate]templateSet{
	models.TemplateBookingReceived: newTemplateSet("booking-received",
		"We received your booking for %s",
		`Hi {{.User.Name}},

Thanks for booking a seat at "{{.Seminar.Title}}". Your payment is being reviewed and we will email you once it is confirmed.`,
		`<p>Hi {{.User.Name}},</p>
<p>Thanks for booking a seat at <strong>{{.Seminar.Title}}</strong>. Your payment is being reviewed and we will email you once it is confirmed.</p>`),

	models.TemplateBookingConfirmed: newTemplateSet("booking-confirmed",
		"Your seat at %s is confirmed",
		`Hi {{.User.Name}},

Your payment has been verified and your seat at "{{.Seminar.Title}}" is confirmed. See you there.`,
		`<p>Hi {{.User.Name}},</p>
<p>Your payment has been verified and your seat at <strong>{{.Seminar.Title}}</strong> is confirmed. See you there.</p>`),

	models.TemplateBookingRejected: newTemplateSet("booking-rejected",
		"Your booking for %s was not approved",
		`Hi {{.User.Name}},

We could not verify the payment for your booking at "{{.Seminar.Title}}", so the seat has been released. Reply to this email if you think this is a mistake.`,
		`<p>Hi {{.User.Name}},</p>
<p>We could not verify the payment for your booking at <strong>{{.Seminar.Title}}</strong>, so the seat has been released. Reply to this email if you think this is a mistake.</p>`),

	models.TemplateBookingPending: newTemplateSet("booking-pending",
		"Your booking for %s is pending review",
		`Hi {{.User.Name}},

Your booking at "{{.Seminar.Title}}" is back under review. We will let you know once a decision is made.`,
		`<p>Hi {{.User.Name}},</p>
<p>Your booking at <strong>{{.Seminar.Title}}</strong> is back under review. We will let you know once a decision is made.</p>`),
}

// HasTemplate reports whether a template is registered.
func HasTemplate(t models.NotificationTemplate) bool {
	_, ok := templates[t]
	return ok
}

// Render builds the subject, plain text and HTML bodies for n.
func Render(n models.Notification) (*Message, error) {
	set, ok := templates[n.Template]
	if !ok {
		return nil, fmt.Errorf("unknown notification template %q", n.Template)
	}

	var text, html bytes.Buffer
	if err := set.text.Execute(&text, n); err != nil {
		return nil, fmt.Errorf("render %s text: %w", n.Template, err)
	}
	if err := set.html.Execute(&html, n); err != nil {
		return nil, fmt.Errorf("render %s html: %w", n.Template, err)
	}

	return &Message{
		Subject: fmt.Sprintf(set.subject, n.Seminar.Title),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
