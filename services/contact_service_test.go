package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/services/logger"
)

func contactRequest() dto.ContactRequest {
	return dto.ContactRequest{
		Name:    " Ana <b>",
		Email:   "ana@example.com",
		Subject: "Late arrival",
		Message: "Hello\nWe land at 23:00 & need a key",
	}
}

func TestContactSend(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	svc := NewContactService(mailer, "desk@hotel.com", logger.Nop{})

	require.NoError(t, svc.Send(context.Background(), contactRequest()))
	require.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	assert.Equal(t, []string{"desk@hotel.com"}, msg.To)
	assert.Equal(t, "ana@example.com", msg.ReplyTo)
	assert.Equal(t, "[Contact] Late arrival", msg.Subject)
	assert.Contains(t, msg.HTML, "Hello<br />We land at 23:00 &amp; need a key")
	assert.Contains(t, msg.HTML, "Ana &lt;b&gt;")
	assert.NotContains(t, msg.HTML, "<b>")
}

func TestContactValidation(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	svc := NewContactService(mailer, "desk@hotel.com", logger.Nop{})

	req := contactRequest()
	req.Message = "  "
	assert.True(t, apperrors.HasCode(svc.Send(context.Background(), req), apperrors.ErrCodeInvalidInput))

	req = contactRequest()
	req.Email = "not-an-email"
	assert.True(t, apperrors.HasCode(svc.Send(context.Background(), req), apperrors.ErrCodeInvalidInput))
	assert.Empty(t, mailer.sent)
}

func TestContactMailerUnavailable(t *testing.T) {
	unconfigured := NewContactService(&fakeMailer{}, "desk@hotel.com", logger.Nop{})
	assert.True(t, apperrors.HasCode(unconfigured.Send(context.Background(), contactRequest()), apperrors.ErrCodeUpstream))

	failing := NewContactService(&fakeMailer{configured: true, err: errors.New("554")}, "desk@hotel.com", logger.Nop{})
	assert.True(t, apperrors.HasCode(failing.Send(context.Background(), contactRequest()), apperrors.ErrCodeUpstream))
}
