package infrastructure

import (
	"xisms.app/internal/config"
	"xisms.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetEmailConfig returns delivery configuration
func (c *ConfigProviderAdapter) GetEmailConfig() ports.EmailConfig {
	return ports.EmailConfig{
		Provider:    c.config.Email.Provider.String(),
		From:        c.config.Email.From,
		Subject:     c.config.Email.Subject,
		SendTimeout: c.config.Email.SendTimeout(),
		Region:      c.config.Email.AWS.Region,
	}
}

// GetCodeConfig returns one-time code configuration
func (c *ConfigProviderAdapter) GetCodeConfig() ports.CodeConfig {
	return ports.CodeConfig{
		Length:      c.config.Code.Length,
		TTL:         c.config.Code.TTL(),
		Intro:       c.config.Code.Intro,
		MaxAttempts: c.config.Code.MaxAttempts,
	}
}

// GetBrandConfig returns email branding
func (c *ConfigProviderAdapter) GetBrandConfig() ports.BrandConfig {
	return ports.BrandConfig{
		Name:       c.config.Brand.Name,
		TermsURL:   c.config.Brand.TermsURL,
		PrivacyURL: c.config.Brand.PrivacyURL,
		ContactURL: c.config.Brand.ContactURL,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}
