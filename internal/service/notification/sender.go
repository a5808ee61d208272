package notification

import (
	"context"
	"log/slog"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// LogSender is a Sender that only logs deliveries. It stands in until a real
// push or email channel is configured.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender that writes deliveries to the log.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("sender", "log")}
}

// Send logs the notification and reports success.
func (s *LogSender) Send(ctx context.Context, n domain.Notification) error {
	s.log.InfoContext(ctx, "notification delivered",
		slog.String("notification_id", n.ID.String()),
		slog.String("recipient", n.Recipient.String()),
		slog.String("type", n.Type.String()))
	return nil
}
