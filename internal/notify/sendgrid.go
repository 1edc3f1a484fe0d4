package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridNotifier delivers assignment notifications by email through the
// SendGrid API.
type SendGridNotifier struct {
	client *sendgrid.Client
	sender string
	logger *zap.SugaredLogger
}

// NewSendGridNotifier builds a notifier sending from the given address.
func NewSendGridNotifier(apiKey, sender string, logger *zap.SugaredLogger) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
		logger: logger,
	}
}

// NotifyAssignment sends the assignment email. Any non-2xx response counts
// as a failure.
func (n *SendGridNotifier) NotifyAssignment(ctx context.Context, recipient string, a Assignment) error {
	from := mail.NewEmail("ResQForce", n.sender)
	to := mail.NewEmail("", recipient)
	message := mail.NewSingleEmailPlainText(from, Subject(a), to, Body(a))

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", recipient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send to %s: status %d: %s", recipient, resp.StatusCode, resp.Body)
	}

	n.logger.Infow("assignment email sent",
		"recipient", recipient,
		"emergency_id", a.EmergencyID,
		"status", resp.StatusCode,
	)
	return nil
}
