package notification

import (
	"context"
	"fmt"
	"net/http"

	"seminarly/models"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotificationService sends rendered emails through the SendGrid v3 API.
type SendGridNotificationService struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendGridNotificationService(apiKey, fromName, fromAddress string) *SendGridNotificationService {
	return &SendGridNotificationService{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromAddress),
	}
}

func (s *SendGridNotificationService) Send(ctx context.Context, n models.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("notification %s has no recipient", n.Template)
	}

	msg, err := Render(n)
	if err != nil {
		return err
	}

	to := sgmail.NewEmail(n.User.Name, n.Recipient)
	m := sgmail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	res, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid: send %s: %w", n.Template, err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: send %s: status %d: %s", n.Template, res.StatusCode, res.Body)
	}
	return nil
}
