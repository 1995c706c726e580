package ports

import "time"

// EmailConfig represents the delivery settings the core needs
type EmailConfig struct {
	Provider    string
	From        string
	Subject     string
	SendTimeout time.Duration
	Region      string
}

// CodeConfig represents one-time code settings
type CodeConfig struct {
	Length      int
	TTL         time.Duration
	Intro       string
	MaxAttempts int
}

// BrandConfig represents the branding rendered into emails
type BrandConfig struct {
	Name       string
	TermsURL   string
	PrivacyURL string
	ContactURL string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetEmailConfig() EmailConfig
	GetCodeConfig() CodeConfig
	GetBrandConfig() BrandConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordDelivery(provider string, success bool, duration time.Duration)
	RecordCodeIssued()
	RecordVerification(outcome string)
}
