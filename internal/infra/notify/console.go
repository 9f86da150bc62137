package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Console senders log instead of calling a real provider. They still return
// provider message ids so the send ledger records something traceable; real
// email/SMS integrations drop in behind the same ports.

type ConsoleEmailSender struct{}

func NewConsoleEmailSender() *ConsoleEmailSender {
	return &ConsoleEmailSender{}
}

func (s *ConsoleEmailSender) Send(ctx context.Context, to, subject, body string) (string, error) {
	id := "email-" + uuid.NewString()
	slog.Info("email sent",
		"to", to,
		"subject", subject,
		"body", body,
		"provider_message_id", id)
	return id, nil
}

type ConsoleSMSSender struct{}

func NewConsoleSMSSender() *ConsoleSMSSender {
	return &ConsoleSMSSender{}
}

func (s *ConsoleSMSSender) Send(ctx context.Context, toE164, body string) (string, error) {
	id := "sms-" + uuid.NewString()
	slog.Info("sms sent",
		"to", toE164,
		"body", body,
		"provider_message_id", id)
	return id, nil
}
