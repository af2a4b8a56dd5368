package services

import (
	"context"
	"fmt"
	"html"

	"hotelbooking/dto"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
)

// BookingEvents receives booking lifecycle events. Delivery is best effort.
type BookingEvents interface {
	Publish(ctx context.Context, event dto.BookingEvent)
}

// EventFanout forwards each event to the dashboard websocket, the message broker and,
// for confirmations, the guest's inbox. Every sink is optional.
type EventFanout struct {
	Broadcaster notification.Service
	Publisher   notification.Publisher
	Mailer      notification.Mailer
	Users       UserStore
	Logger      logger.Logger
}

func (f *EventFanout) Publish(ctx context.Context, event dto.BookingEvent) {
	if f.Broadcaster != nil {
		if err := notification.BroadcastJSON(ctx, f.Broadcaster, event); err != nil {
			f.Logger.Error("broadcast booking event", "type", event.Type, "booking_id", event.BookingID, "error", err)
		}
	}
	if f.Publisher != nil {
		if err := f.Publisher.Publish(ctx, event.Type, event); err != nil {
			f.Logger.Error("publish booking event", "type", event.Type, "booking_id", event.BookingID, "error", err)
		}
	}
	if event.Type == dto.BookingEventConfirmed && f.Mailer != nil && f.Mailer.Configured() && f.Users != nil {
		if err := f.sendConfirmation(ctx, event); err != nil {
			f.Logger.Error("send booking email", "booking_id", event.BookingID, "error", err)
		}
	}
}

func (f *EventFanout) sendConfirmation(ctx context.Context, event dto.BookingEvent) error {
	user, err := f.Users.GetByID(ctx, event.UserID)
	if err != nil {
		return err
	}
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Booking confirmed</title></head>
<body>
	<p>Hello %s,</p>
	<p>Your booking is confirmed.</p>
	<ul>
		<li>Booking number: <strong>%d</strong></li>
		<li>Check-in: <strong>%s</strong></li>
		<li>Check-out: <strong>%s</strong></li>
		<li>Total: <strong>%s</strong></li>
	</ul>
	<p>Thank you for booking with us.</p>
</body>
</html>`,
		html.EscapeString(user.Name), event.BookingID,
		event.CheckIn.Format("2006-01-02"), event.CheckOut.Format("2006-01-02"),
		formatCurrency(event.TotalPrice))

	return f.Mailer.Send(ctx, notification.Message{
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Booking #%d confirmed", event.BookingID),
		HTML:    body,
	})
}

func formatCurrency(amount float64) string {
	return fmt.Sprintf("%0.2f", amount)
}
