package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"mountworks/internal/infra"
	"mountworks/internal/infra/sqlc"
	"mountworks/internal/pkg/clock"
	"mountworks/internal/pkg/errs"
	"mountworks/internal/pkg/phone"
	"mountworks/internal/usecase/shared"

	"github.com/google/uuid"
)

type SendResult struct {
	BookingID   uuid.UUID
	Recipient   string
	MessageType string
	Channel     string
	Sent        bool
	Deduped     bool
}

type NotificationCommands interface {
	// Send delivers the message for bookingID at most once per
	// (recipient, messageType); force bypasses the dedupe ledger.
	Send(ctx context.Context, bookingID uuid.UUID, messageType string, force bool) (*SendResult, error)
}

type notificationUseCaseImpl struct {
	ledger       NotificationLedger
	bookingReads BookingReads
	email        EmailSender
	sms          SMSSender
	publisher    EventPublisher
	runner       shared.TxRunner
	clock        clock.Clock
}

func NewNotificationUseCase(
	ledger NotificationLedger,
	bookingReads BookingReads,
	email EmailSender,
	sms SMSSender,
	publisher EventPublisher,
	runner shared.TxRunner,
	clock clock.Clock,
) NotificationCommands {
	return &notificationUseCaseImpl{
		ledger:       ledger,
		bookingReads: bookingReads,
		email:        email,
		sms:          sms,
		publisher:    publisher,
		runner:       runner,
		clock:        clock,
	}
}

func (n *notificationUseCaseImpl) Send(
	ctx context.Context,
	bookingID uuid.UUID,
	messageType string,
	force bool,
) (*SendResult, error) {
	snap, err := n.bookingReads.SnapshotByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	recipient, channel, err := resolveRecipient(snap)
	if err != nil {
		return nil, err
	}

	if !force {
		deduped, err := n.alreadySent(ctx, bookingID, recipient, messageType)
		if err != nil {
			return nil, err
		}
		if deduped {
			return &SendResult{
				BookingID:   bookingID,
				Recipient:   recipient,
				MessageType: messageType,
				Channel:     channel,
				Sent:        false,
				Deduped:     true,
			}, nil
		}
	}

	providerMessageID, err := n.deliver(ctx, snap, recipient, channel, messageType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrNotificationFailed)
	}

	n.record(ctx, shared.SendRecord{
		ID:                uuid.New(),
		BookingID:         bookingID,
		Recipient:         recipient,
		MessageType:       messageType,
		Channel:           channel,
		Status:            "sent",
		ProviderMessageID: providerMessageID,
		CreatedAt:         n.clock.Now(),
	})
	n.publishSent(ctx, bookingID, recipient, messageType, channel)

	return &SendResult{
		BookingID:   bookingID,
		Recipient:   recipient,
		MessageType: messageType,
		Channel:     channel,
		Sent:        true,
		Deduped:     false,
	}, nil
}

// resolveRecipient picks the delivery channel from the contact data on the
// booking: email when present, SMS otherwise. A phone that fails strict
// normalization is a hard error, not a silent fallback.
func resolveRecipient(snap *shared.BookingSnapshot) (recipient, channel string, err error) {
	if email := strings.TrimSpace(snap.CustomerEmail()); email != "" {
		if _, parseErr := mail.ParseAddress(email); parseErr != nil {
			return "", "", errs.Mark(parseErr, errs.ErrInvalidRecipient)
		}
		return email, "email", nil
	}

	if raw := strings.TrimSpace(snap.CustomerPhone()); raw != "" {
		normalized, normErr := phone.Normalize(raw)
		if normErr != nil {
			return "", "", errs.Mark(normErr, errs.ErrInvalidRecipient)
		}
		return normalized, "sms", nil
	}

	return "", "", errs.ErrInvalidRecipient
}

func (n *notificationUseCaseImpl) alreadySent(ctx context.Context, bookingID uuid.UUID, recipient, messageType string) (bool, error) {
	var found bool
	err := n.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		_, findErr := n.ledger.Find(ctx, db, bookingID, recipient, messageType)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return nil
			}
			return findErr
		}
		found = true
		return nil
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return found, nil
}

func (n *notificationUseCaseImpl) deliver(
	ctx context.Context,
	snap *shared.BookingSnapshot,
	recipient, channel, messageType string,
) (*string, error) {
	subject, body := composeMessage(snap, messageType)

	switch channel {
	case "email":
		id, err := n.email.Send(ctx, recipient, subject, body)
		if err != nil {
			return nil, err
		}
		return &id, nil
	case "sms":
		id, err := n.sms.Send(ctx, recipient, body)
		if err != nil {
			return nil, err
		}
		return &id, nil
	default:
		return nil, errs.ErrInvalidRecipient
	}
}

// record writes the dedupe ledger row after a successful provider send. The
// insert is conflict-tolerant: if a concurrent send already recorded this
// tuple, the duplicate delivery has happened and only the logging differs.
func (n *notificationUseCaseImpl) record(ctx context.Context, rec shared.SendRecord) {
	err := n.runner.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		inserted, recErr := n.ledger.TryRecord(ctx, db, rec)
		if recErr != nil {
			return recErr
		}
		if !inserted {
			slog.Warn("notification already recorded for tuple",
				"booking_id", rec.BookingID,
				"recipient", rec.Recipient,
				"message_type", rec.MessageType)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to record notification send",
			"booking_id", rec.BookingID,
			"message_type", rec.MessageType,
			"error", err)
	}
}

func (n *notificationUseCaseImpl) publishSent(ctx context.Context, bookingID uuid.UUID, recipient, messageType, channel string) {
	if n.publisher == nil {
		return
	}
	event := map[string]any{
		"booking_id":   bookingID,
		"recipient":    recipient,
		"message_type": messageType,
		"channel":      channel,
		"sent_at":      n.clock.Now(),
	}
	if err := n.publisher.PublishJSON(ctx, "booking.notified", event); err != nil {
		slog.Warn("failed to publish notification event",
			"booking_id", bookingID,
			"error", err)
	}
}

func composeMessage(snap *shared.BookingSnapshot, messageType string) (subject, body string) {
	date := snap.ScheduledDate.Format("Monday, January 2")
	window := fmt.Sprintf("%s for %d minutes", minutesToClock(snap.StartMin), snap.DurationMin)

	switch messageType {
	case "worker_assigned":
		subject = "Your installer is confirmed"
		body = fmt.Sprintf("An installer has been assigned to your TV mounting on %s at %s. Address: %s.", date, window, snap.Address)
	case "booking_confirmed":
		subject = "Your booking is confirmed"
		body = fmt.Sprintf("Your TV mounting is booked for %s at %s. Address: %s.", date, window, snap.Address)
	default:
		subject = "Booking update"
		body = fmt.Sprintf("There is an update on your TV mounting scheduled for %s.", date)
	}
	return subject, body
}

func minutesToClock(startMin int) string {
	return fmt.Sprintf("%02d:%02d", startMin/60, startMin%60)
}
