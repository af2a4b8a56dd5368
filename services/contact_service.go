package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
	"hotelbooking/validator"
)

const contactSubjectPrefix = "[Contact] "

type ContactService struct {
	mailer    notification.Mailer
	recipient string
	logger    logger.Logger
}

func NewContactService(mailer notification.Mailer, recipient string, log logger.Logger) *ContactService {
	return &ContactService{mailer: mailer, recipient: recipient, logger: log}
}

// Send forwards a visitor message to the site inbox. Replies go to the visitor.
func (s *ContactService) Send(ctx context.Context, req dto.ContactRequest) error {
	if err := validator.ValidateContact(&req); err != nil {
		return err
	}
	if s.mailer == nil || !s.mailer.Configured() || s.recipient == "" {
		return apperrors.Upstream("email service is not configured", notification.ErrMailerNotConfigured)
	}

	msg := notification.Message{
		To:      []string{s.recipient},
		ReplyTo: req.Email,
		Subject: contactSubjectPrefix + req.Subject,
		HTML:    contactHTML(req),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("send contact email", "error", err)
		return apperrors.Upstream("could not send message", err)
	}
	s.logger.Info("contact message sent", "subject", req.Subject)
	return nil
}

func contactHTML(req dto.ContactRequest) string {
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br />")
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New contact message</title></head>
<body>
	<h2>New contact message</h2>
	<p><strong>Name:</strong> %s</p>
	<p><strong>Email:</strong> %s</p>
	<p><strong>Subject:</strong> %s</p>
	<p><strong>Message:</strong></p>
	<p>%s</p>
</body>
</html>`,
		html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Subject), message)
}
