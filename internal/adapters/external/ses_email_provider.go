package external

import (
	"context"
	stderrors "errors"
	"net/mail"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
	"xisms.app/pkg/validation"
)

const providerNameSES = "ses"

const charsetUTF8 = "UTF-8"

// sesSender is the slice of the SES v2 client used for delivery
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESConfig represents Amazon SES configuration
type SESConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Endpoint        string
	From            string
}

// SESEmailProviderAdapter implements EmailProvider port using Amazon SES v2.
// The underlying client is created on first use and shared by all sends.
type SESEmailProviderAdapter struct {
	config SESConfig

	once   sync.Once
	client sesSender
}

// NewSESEmailProviderAdapter creates a new SES email provider adapter
func NewSESEmailProviderAdapter(config SESConfig) (*SESEmailProviderAdapter, error) {
	p := &SESEmailProviderAdapter{config: config}
	if err := p.ValidateConfiguration(); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateConfiguration validates the SES provider configuration
func (p *SESEmailProviderAdapter) ValidateConfiguration() error {
	if p.config.AccessKeyID == "" {
		return errors.NewConfigurationMissingError("AWS access key ID is not configured")
	}
	if p.config.SecretAccessKey == "" {
		return errors.NewConfigurationMissingError("AWS secret access key is not configured")
	}
	if p.config.Region == "" {
		return errors.NewConfigurationMissingError("AWS region is not configured")
	}
	if _, err := mail.ParseAddress(p.config.From); err != nil {
		return errors.NewConfigurationError("sender address is invalid", err)
	}
	return nil
}

// Name returns the provider identifier
func (p *SESEmailProviderAdapter) Name() string {
	return providerNameSES
}

// Send delivers one HTML message to req.To in a single SendEmail call
func (p *SESEmailProviderAdapter) Send(ctx context.Context, req ports.EmailRequest) (ports.DeliveryResult, error) {
	if err := validateRequest(req); err != nil {
		return ports.DeliveryResult{}, err
	}

	out, err := p.getClient().SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(p.config.From),
		Destination: &types.Destination{
			ToAddresses: []string{req.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(req.Subject), Charset: aws.String(charsetUTF8)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(req.HTMLBody), Charset: aws.String(charsetUTF8)},
				},
			},
		},
	})
	if err != nil {
		return ports.DeliveryResult{}, errors.NewDeliveryFailedError("ses send email failed", sesReason(err), err)
	}

	return ports.DeliveryResult{
		Success:   true,
		MessageID: aws.ToString(out.MessageId),
		Provider:  providerNameSES,
	}, nil
}

func (p *SESEmailProviderAdapter) getClient() sesSender {
	p.once.Do(func() {
		if p.client != nil {
			return
		}

		opts := []func(*sesv2.Options){
			func(o *sesv2.Options) {
				o.Region = p.config.Region
				o.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
					p.config.AccessKeyID,
					p.config.SecretAccessKey,
					"",
				))
				o.Retryer = aws.NopRetryer{}
			},
		}

		if p.config.Endpoint != "" {
			opts = append(opts, func(o *sesv2.Options) {
				o.BaseEndpoint = aws.String(p.config.Endpoint)
			})
		}

		p.client = sesv2.New(sesv2.Options{}, opts...)
	})
	return p.client
}

// sesReason extracts the provider error code, or the context error when the
// attempt was cut short.
func sesReason(err error) string {
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return "Timeout"
	}
	if stderrors.Is(err, context.Canceled) {
		return "Canceled"
	}
	return ""
}

// validateRequest enforces a single well-formed recipient and a non-empty message
func validateRequest(req ports.EmailRequest) error {
	to := strings.TrimSpace(req.To)
	if to == "" {
		return errors.NewInvalidInputError("recipient email cannot be empty")
	}
	if strings.ContainsAny(to, ",;") {
		return errors.NewInvalidInputError("exactly one recipient is allowed")
	}
	if !validation.IsValidEmail(to) {
		return errors.NewInvalidInputError("recipient email is malformed")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return errors.NewInvalidInputError("email subject cannot be empty")
	}
	if strings.ContainsAny(req.Subject, "\r\n") {
		return errors.NewInvalidInputError("email subject cannot contain line breaks")
	}
	if strings.TrimSpace(req.HTMLBody) == "" {
		return errors.NewInvalidInputError("email body cannot be empty")
	}
	return nil
}
