package external

import (
	"context"
	stderrors "errors"
	"time"

	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

// EmailProviderLoggingDecorator decorates email providers with structured logging
type EmailProviderLoggingDecorator struct {
	provider ports.EmailProvider
	logger   ports.Logger
}

// NewEmailProviderLoggingDecorator creates a new logging decorator for email providers
func NewEmailProviderLoggingDecorator(provider ports.EmailProvider, logger ports.Logger) *EmailProviderLoggingDecorator {
	return &EmailProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// Send wraps the provider call with structured logging
func (d *EmailProviderLoggingDecorator) Send(ctx context.Context, req ports.EmailRequest) (ports.DeliveryResult, error) {
	providerName := d.provider.Name()

	d.logger.Debug("Email send started",
		ports.F("provider", providerName),
		ports.F("to", req.To),
		ports.F("event", "request"))

	startTime := time.Now()
	result, err := d.provider.Send(ctx, req)
	duration := time.Since(startTime)

	if err != nil {
		fields := []ports.Field{
			ports.F("provider", providerName),
			ports.F("to", req.To),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()),
		}
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && appErr.Reason != "" {
			fields = append(fields, ports.F("reason", appErr.Reason))
		}
		d.logger.Warn("Email send failed", fields...)
		return ports.DeliveryResult{}, err
	}

	d.logger.Info("Email send completed",
		ports.F("provider", providerName),
		ports.F("to", req.To),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("messageID", result.MessageID))

	return result, nil
}

// Name returns the wrapped provider's name so metrics stay keyed by provider
func (d *EmailProviderLoggingDecorator) Name() string {
	return d.provider.Name()
}
