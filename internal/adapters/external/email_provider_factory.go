package external

import (
	"fmt"

	"xisms.app/internal/config"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

type EmailProviderFactory struct {
	logger ports.Logger
}

func NewEmailProviderFactory(logger ports.Logger) *EmailProviderFactory {
	return &EmailProviderFactory{logger: logger}
}

func (f *EmailProviderFactory) CreateEmailProvider(cfg *config.EmailConfig) (ports.EmailProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("email config cannot be nil", nil)
	}

	switch cfg.Provider {
	case config.EmailProviderSES:
		provider, err := NewSESEmailProviderAdapter(SESConfig{
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Region:          cfg.AWS.Region,
			Endpoint:        cfg.AWS.Endpoint,
			From:            cfg.From,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case config.EmailProviderSMTP:
		provider, err := NewSMTPEmailProviderAdapter(SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.From,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case config.EmailProviderLog:
		if f.logger == nil {
			return nil, errors.NewConfigurationError("log email provider requires a logger", nil)
		}
		return NewLogEmailProviderAdapter(f.logger), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported email provider: %s", cfg.Provider.String()), nil)
	}
}
