package external

import (
	"context"

	"github.com/google/uuid"
	"xisms.app/internal/ports"
)

const providerNameLog = "log"

// LogEmailProviderAdapter writes messages to the logger instead of sending them.
// Used for local development.
type LogEmailProviderAdapter struct {
	logger ports.Logger
}

func NewLogEmailProviderAdapter(logger ports.Logger) *LogEmailProviderAdapter {
	return &LogEmailProviderAdapter{logger: logger}
}

func (p *LogEmailProviderAdapter) Name() string {
	return providerNameLog
}

func (p *LogEmailProviderAdapter) Send(ctx context.Context, req ports.EmailRequest) (ports.DeliveryResult, error) {
	if err := validateRequest(req); err != nil {
		return ports.DeliveryResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return ports.DeliveryResult{}, err
	}

	messageID := uuid.New().String()
	p.logger.Info("Email captured by log provider",
		ports.F("messageID", messageID),
		ports.F("to", req.To),
		ports.F("subject", req.Subject),
		ports.F("bodyBytes", len(req.HTMLBody)))
	p.logger.Debug("Email body", ports.F("messageID", messageID), ports.F("html", req.HTMLBody))

	return ports.DeliveryResult{
		Success:   true,
		MessageID: messageID,
		Provider:  providerNameLog,
	}, nil
}
