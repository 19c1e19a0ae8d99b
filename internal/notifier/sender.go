package notifier

import (
	"context"
	"log/slog"

	"venue-rsvp/internal/pkg/config"
)

// Message is one confirmation email ready for delivery.
type Message struct {
	To       string
	Subject  string
	Template string
	FromName string
	ReplyTo  string
}

// Sender delivers confirmation messages. Delivery is an external concern;
// implementations must not be relied on for correctness of the rsvp flow.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender stands in for the mail gateway: it records the would-be send.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("confirmation email dispatched",
		"to", msg.To,
		"subject", msg.Subject,
		"template", msg.Template,
		"from", msg.FromName,
		"reply_to", msg.ReplyTo,
	)
	return nil
}

var _ Sender = (*LogSender)(nil)

// SubjectFor maps an rsvp category to its confirmation subject line.
func SubjectFor(category string, _ config.MailerConfig) string {
	switch category {
	case "vip_dinner", "special_guest":
		return "VIP Reservation Confirmed - Ladies Night at Lobby Hamilton"
	default:
		return "RSVP Confirmed - Ladies Night at Lobby Hamilton"
	}
}
