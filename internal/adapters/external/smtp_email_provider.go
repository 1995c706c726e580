package external

import (
	"context"
	"crypto/tls"
	stderrors "errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

const providerNameSMTP = "smtp"

// SMTPConfig represents SMTP configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPEmailProviderAdapter implements EmailProvider port using SMTP
type SMTPEmailProviderAdapter struct {
	config   SMTPConfig
	fromAddr string
}

// NewSMTPEmailProviderAdapter creates a new SMTP email provider adapter
func NewSMTPEmailProviderAdapter(config SMTPConfig) (*SMTPEmailProviderAdapter, error) {
	p := &SMTPEmailProviderAdapter{config: config}
	if err := p.ValidateConfiguration(); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateConfiguration validates the email provider configuration
func (p *SMTPEmailProviderAdapter) ValidateConfiguration() error {
	if p.config.Host == "" {
		return errors.NewConfigurationError("SMTP host cannot be empty", nil)
	}
	if p.config.Port < 1 || p.config.Port > 65535 {
		return errors.NewConfigurationError("SMTP port must be between 1 and 65535", nil)
	}
	from, err := mail.ParseAddress(p.config.From)
	if err != nil {
		return errors.NewConfigurationError("from address is invalid", err)
	}
	p.fromAddr = from.Address
	return nil
}

// Name returns the provider identifier
func (p *SMTPEmailProviderAdapter) Name() string {
	return providerNameSMTP
}

// Send delivers one HTML message over a fresh SMTP session
func (p *SMTPEmailProviderAdapter) Send(ctx context.Context, req ports.EmailRequest) (ports.DeliveryResult, error) {
	if err := validateRequest(req); err != nil {
		return ports.DeliveryResult{}, err
	}

	messageID := fmt.Sprintf("%s@%s", uuid.New().String(), p.senderDomain())
	msg := p.buildMessage(messageID, req)

	if err := p.deliver(ctx, req.To, msg); err != nil {
		return ports.DeliveryResult{}, err
	}

	return ports.DeliveryResult{
		Success:   true,
		MessageID: messageID,
		Provider:  providerNameSMTP,
	}, nil
}

func (p *SMTPEmailProviderAdapter) deliver(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(p.config.Host, fmt.Sprint(p.config.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.NewDeliveryFailedError("failed to connect to SMTP server", smtpReason(ctx, err), err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, p.config.Host)
	if err != nil {
		_ = conn.Close()
		return errors.NewDeliveryFailedError("failed to start SMTP session", smtpReason(ctx, err), err)
	}
	defer func() {
		_ = client.Close()
	}()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: p.config.Host}); err != nil {
			return errors.NewDeliveryFailedError("failed to establish secure TLS connection", smtpReason(ctx, err), err)
		}
	}

	if p.config.Username != "" && p.config.Password != "" {
		auth := smtp.PlainAuth("", p.config.Username, p.config.Password, p.config.Host)
		if err := client.Auth(auth); err != nil {
			return errors.NewDeliveryFailedError("failed to authenticate", smtpReason(ctx, err), err)
		}
	}

	if err := client.Mail(p.fromAddr); err != nil {
		return errors.NewDeliveryFailedError("failed to set sender", smtpReason(ctx, err), err)
	}
	if err := client.Rcpt(to); err != nil {
		return errors.NewDeliveryFailedError("failed to set recipient", smtpReason(ctx, err), err)
	}

	writer, err := client.Data()
	if err != nil {
		return errors.NewDeliveryFailedError("failed to get data writer", smtpReason(ctx, err), err)
	}
	if _, err := writer.Write(msg); err != nil {
		_ = writer.Close()
		return errors.NewDeliveryFailedError("failed to write message", smtpReason(ctx, err), err)
	}
	if err := writer.Close(); err != nil {
		return errors.NewDeliveryFailedError("message rejected", smtpReason(ctx, err), err)
	}

	// message is accepted once DATA completes
	_ = client.Quit()
	return nil
}

func (p *SMTPEmailProviderAdapter) senderDomain() string {
	if i := strings.LastIndex(p.fromAddr, "@"); i >= 0 {
		return p.fromAddr[i+1:]
	}
	return p.config.Host
}

// buildMessage constructs the RFC 5322 message
func (p *SMTPEmailProviderAdapter) buildMessage(messageID string, req ports.EmailRequest) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", p.config.From)
	fmt.Fprintf(&sb, "To: %s\r\n", req.To)
	fmt.Fprintf(&sb, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", req.Subject))
	fmt.Fprintf(&sb, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&sb, "Message-ID: <%s>\r\n", messageID)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(req.HTMLBody)
	return []byte(sb.String())
}

// smtpReason reports the SMTP reply code, or the context error when the
// attempt was cut short.
func smtpReason(ctx context.Context, err error) string {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return "Timeout"
	case context.Canceled:
		return "Canceled"
	}
	var tpErr *textproto.Error
	if stderrors.As(err, &tpErr) {
		return strconv.Itoa(tpErr.Code)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return "Timeout"
	}
	return ""
}
