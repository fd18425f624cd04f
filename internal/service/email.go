package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	fromName string
	from     string
}

func NewEmailService(apiKey, fromName, from string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		fromName: fromName,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail("", to)
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

func (s *emailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, itemName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested to rent your item: %s.\n\nPlease approve or reject the request within 3 days, otherwise it will expire.\n\nBest regards,\nThe Rentloop Team", renterName, itemName)
	return s.send(ownerEmail, fmt.Sprintf("New rental request for %s", itemName), body)
}

func (s *emailService) SendBookingReceivedNotification(ctx context.Context, renterEmail, itemName string) error {
	body := fmt.Sprintf("Hello,\n\nYour rental request for %s has been sent to the owner. You will be notified once they respond.\n\nBest regards,\nThe Rentloop Team", itemName)
	return s.send(renterEmail, fmt.Sprintf("Request sent for %s", itemName), body)
}

func (s *emailService) SendBookingApprovalNotification(ctx context.Context, renterEmail, itemName string) error {
	body := fmt.Sprintf("Hello,\n\nGood news! Your rental request for %s has been approved.\n\nBest regards,\nThe Rentloop Team", itemName)
	return s.send(renterEmail, fmt.Sprintf("Rental approved: %s", itemName), body)
}

func (s *emailService) SendBookingRejectionNotification(ctx context.Context, renterEmail, itemName, reason string) error {
	body := fmt.Sprintf("Hello,\n\nUnfortunately your rental request for %s was declined.", itemName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Rentloop Team"
	return s.send(renterEmail, fmt.Sprintf("Rental declined: %s", itemName), body)
}

func (s *emailService) SendBookingCompletionNotification(ctx context.Context, email, itemName string) error {
	body := fmt.Sprintf("Hello,\n\nYour rental of %s has been marked as completed. You can now leave a review.\n\nBest regards,\nThe Rentloop Team", itemName)
	return s.send(email, fmt.Sprintf("Rental completed: %s", itemName), body)
}

func (s *emailService) SendBookingExpiredNotification(ctx context.Context, renterEmail, itemName string) error {
	body := fmt.Sprintf("Hello,\n\nYour rental request for %s was cancelled because the owner did not respond in time. The dates are available for booking elsewhere.\n\nBest regards,\nThe Rentloop Team", itemName)
	return s.send(renterEmail, fmt.Sprintf("Rental request expired: %s", itemName), body)
}
