package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRequestDecisionNotification(ctx context.Context, email, name, subject, body string) error {
	text := fmt.Sprintf("Hello %s,\n\n%s\n\nBest regards,\nThe Dog Walk Team", name, body)
	return s.send(email, name, subject, text)
}

func (s *emailService) SendSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error {
	subject := fmt.Sprintf("Walk session today at %s", walkTime)
	body := fmt.Sprintf("Hello %s,\n\nYour walk session is scheduled for today (%s) at %s. Remember to check your walkers in.\n\nBest regards,\nThe Dog Walk Team", name, walkDate, walkTime)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendStaleSessionReminder(ctx context.Context, email, name, walkDate, walkTime string) error {
	subject := "Walk session awaiting finalization"
	body := fmt.Sprintf("Hello %s,\n\nYour walk session from %s %s has not been finalized or cancelled yet. Please complete it so reports can be generated.\n\nBest regards,\nThe Dog Walk Team", name, walkDate, walkTime)
	return s.send(email, name, subject, body)
}
