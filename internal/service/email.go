package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService delivers operator-facing job reports.
type EmailService interface {
	SendJobReport(ctx context.Context, subject, body string) error
}

type sendGridEmailService struct {
	apiKey        string
	fromEmail     string
	fromName      string
	operatorEmail string
}

func NewEmailService(apiKey, fromEmail, fromName, operatorEmail string) EmailService {
	return &sendGridEmailService{
		apiKey:        apiKey,
		fromEmail:     fromEmail,
		fromName:      fromName,
		operatorEmail: operatorEmail,
	}
}

func (s *sendGridEmailService) SendJobReport(ctx context.Context, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Operations", s.operatorEmail)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send job report: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
