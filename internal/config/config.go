package config

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"xisms.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxPortNumber      = 65535
	minCodeLength      = 4
	maxCodeLength      = 12
	maxCodeTTLMinutes  = 1440
	maxSendTimeoutSecs = 120
	maxCodeAttempts    = 20
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Email    EmailConfig    `split_words:"true"`
	Code     CodeConfig     `split_words:"true"`
	Brand    BrandConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Redis    RedisConfig    `split_words:"true"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string         `envconfig:"LOG_FILE"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// EmailProviderType selects the Delivery Client implementation
type EmailProviderType int

const (
	EmailProviderUnknown EmailProviderType = iota
	EmailProviderSES
	EmailProviderSMTP
	EmailProviderLog
)

// String returns the string representation of the provider type
func (p EmailProviderType) String() string {
	switch p {
	case EmailProviderSES:
		return "ses"
	case EmailProviderSMTP:
		return "smtp"
	case EmailProviderLog:
		return "log"
	default:
		return "unknown"
	}
}

// IsValid checks if the provider type is valid
func (p EmailProviderType) IsValid() bool {
	return p == EmailProviderSES || p == EmailProviderSMTP || p == EmailProviderLog
}

// EmailProviderTypeFromString converts string to EmailProviderType enum
func EmailProviderTypeFromString(s string) EmailProviderType {
	switch strings.ToLower(s) {
	case "ses":
		return EmailProviderSES
	case "smtp":
		return EmailProviderSMTP
	case "log":
		return EmailProviderLog
	default:
		return EmailProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (p *EmailProviderType) UnmarshalText(text []byte) error {
	*p = EmailProviderTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (p EmailProviderType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type EmailConfig struct {
	Provider           EmailProviderType `envconfig:"EMAIL_PROVIDER" default:"ses"`
	From               string            `envconfig:"EMAIL_FROM" default:"ACME Inc. <noreply@xisms.app>"`
	Subject            string            `envconfig:"EMAIL_SUBJECT" default:"Your XiSMS Code"`
	SendTimeoutSeconds int               `envconfig:"EMAIL_SEND_TIMEOUT" default:"10"`
	AWS                AWSConfig         `split_words:"true"`
	SMTP               SMTPConfig        `split_words:"true"`
}

// SendTimeout bounds a single delivery attempt
func (e EmailConfig) SendTimeout() time.Duration {
	return time.Duration(e.SendTimeoutSeconds) * time.Second
}

type AWSConfig struct {
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	Region          string `envconfig:"AWS_REGION" default:"us-east-2"`
	Endpoint        string `envconfig:"AWS_SES_ENDPOINT"`
}

type SMTPConfig struct {
	Host     string `envconfig:"EMAIL_SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	Username string `envconfig:"EMAIL_SMTP_USERNAME"`
	Password string `envconfig:"EMAIL_SMTP_PASSWORD"`
}

// CodeStoreType selects where issued one-time codes are kept
type CodeStoreType int

const (
	CodeStoreUnknown CodeStoreType = iota
	CodeStoreMemory
	CodeStoreRedis
	CodeStoreDatabase
)

// String returns the string representation of code store type
func (c CodeStoreType) String() string {
	switch c {
	case CodeStoreMemory:
		return "memory"
	case CodeStoreRedis:
		return "redis"
	case CodeStoreDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the code store type is valid
func (c CodeStoreType) IsValid() bool {
	return c == CodeStoreMemory || c == CodeStoreRedis || c == CodeStoreDatabase
}

// CodeStoreTypeFromString converts string to CodeStoreType enum
func CodeStoreTypeFromString(s string) CodeStoreType {
	switch strings.ToLower(s) {
	case "memory":
		return CodeStoreMemory
	case "redis":
		return CodeStoreRedis
	case "database":
		return CodeStoreDatabase
	default:
		return CodeStoreUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CodeStoreType) UnmarshalText(text []byte) error {
	*c = CodeStoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CodeStoreType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CodeConfig struct {
	Length                 int           `envconfig:"CODE_LENGTH" default:"6"`
	TTLMinutes             int           `envconfig:"CODE_TTL_MINUTES" default:"10"`
	Intro                  string        `envconfig:"CODE_INTRO" default:"Further verification is required to access your account."`
	Store                  CodeStoreType `envconfig:"CODE_STORE" default:"memory"`
	CleanupIntervalMinutes int           `envconfig:"CODE_CLEANUP_INTERVAL_MINUTES" default:"5"`
	MaxAttempts            int           `envconfig:"CODE_MAX_ATTEMPTS" default:"5"`
}

// TTL is how long an issued code stays redeemable
func (c CodeConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// CleanupInterval is the period of the expired-code purge loop
func (c CodeConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMinutes) * time.Minute
}

type BrandConfig struct {
	Name       string `envconfig:"BRAND_NAME" default:"ACME Inc."`
	TermsURL   string `envconfig:"BRAND_TERMS_URL" default:"https://example.com/terms"`
	PrivacyURL string `envconfig:"BRAND_PRIVACY_URL" default:"https://example.com/privacy"`
	ContactURL string `envconfig:"BRAND_CONTACT_URL" default:"https://example.com/contact"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"xisms"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"xisms:code:"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Code.Validate(); err != nil {
		return err
	}
	if err := c.Brand.Validate(); err != nil {
		return err
	}
	switch c.Code.Store {
	case CodeStoreDatabase:
		return c.Database.Validate()
	case CodeStoreRedis:
		return c.Redis.Validate()
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (e *EmailConfig) Validate() error {
	if !e.Provider.IsValid() {
		return errors.NewConfigurationError("EMAIL_PROVIDER must be one of: ses, smtp, log", nil)
	}
	if e.From == "" {
		return errors.NewConfigurationError("EMAIL_FROM cannot be empty", nil)
	}
	if _, err := mail.ParseAddress(e.From); err != nil {
		return errors.NewConfigurationError("EMAIL_FROM must be a valid address", err)
	}
	if strings.TrimSpace(e.Subject) == "" {
		return errors.NewConfigurationError("EMAIL_SUBJECT cannot be empty", nil)
	}
	if e.SendTimeoutSeconds < 1 || e.SendTimeoutSeconds > maxSendTimeoutSecs {
		return errors.NewConfigurationError("EMAIL_SEND_TIMEOUT must be between 1 and 120 seconds", nil)
	}

	switch e.Provider {
	case EmailProviderSES:
		return e.AWS.Validate()
	case EmailProviderSMTP:
		return e.SMTP.Validate()
	}
	return nil
}

func (a *AWSConfig) Validate() error {
	if a.AccessKeyID == "" {
		return errors.NewConfigurationMissingError("AWS_ACCESS_KEY_ID is required when EMAIL_PROVIDER=ses")
	}
	if a.SecretAccessKey == "" {
		return errors.NewConfigurationMissingError("AWS_SECRET_ACCESS_KEY is required when EMAIL_PROVIDER=ses")
	}
	if a.Region == "" {
		return errors.NewConfigurationMissingError("AWS_REGION cannot be empty")
	}
	if a.Endpoint != "" && !strings.HasPrefix(a.Endpoint, "http://") && !strings.HasPrefix(a.Endpoint, "https://") {
		return errors.NewConfigurationError("AWS_SES_ENDPOINT must start with http:// or https://", nil)
	}
	return nil
}

func (s *SMTPConfig) Validate() error {
	if s.Host == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if (s.Username == "") != (s.Password == "") {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD must both be provided or both be empty", nil)
	}
	return nil
}

func (c *CodeConfig) Validate() error {
	if c.Length < minCodeLength || c.Length > maxCodeLength {
		return errors.NewConfigurationError("CODE_LENGTH must be between 4 and 12", nil)
	}
	if c.TTLMinutes < 1 || c.TTLMinutes > maxCodeTTLMinutes {
		return errors.NewConfigurationError("CODE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if c.CleanupIntervalMinutes < 1 {
		return errors.NewConfigurationError("CODE_CLEANUP_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	if c.MaxAttempts < 1 || c.MaxAttempts > maxCodeAttempts {
		return errors.NewConfigurationError("CODE_MAX_ATTEMPTS must be between 1 and 20", nil)
	}
	if !c.Store.IsValid() {
		return errors.NewConfigurationError("CODE_STORE must be one of: memory, redis, database", nil)
	}
	return nil
}

func (b *BrandConfig) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.NewConfigurationError("BRAND_NAME cannot be empty", nil)
	}
	for name, link := range map[string]string{
		"BRAND_TERMS_URL":   b.TermsURL,
		"BRAND_PRIVACY_URL": b.PrivacyURL,
		"BRAND_CONTACT_URL": b.ContactURL,
	} {
		if link != "" && !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
		}
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis code store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
