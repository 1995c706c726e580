package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"xisms.app/internal/core/mailtemplate"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
	"xisms.app/pkg/validation"
)

// Messages returned to the submitting client
const (
	MsgEmailRequired = "Email is required"
	MsgInvalidEmail  = "Invalid email address"
	MsgCodeRequired  = "Code is required"
	MsgInvalidCode   = "Invalid or expired code"
)

type UseCase struct {
	emailProvider ports.EmailProvider
	codeStore     ports.CodeStore
	renderer      *mailtemplate.Renderer
	generate      Generator
	config        ports.ConfigProvider
	logger        ports.Logger
	metrics       ports.MetricsCollector
	now           func() time.Time
}

type UseCaseDependencies struct {
	EmailProvider ports.EmailProvider
	CodeStore     ports.CodeStore
	Renderer      *mailtemplate.Renderer
	Generator     Generator
	Config        ports.ConfigProvider
	Logger        ports.Logger
	Metrics       ports.MetricsCollector
	Clock         func() time.Time
}

type SendCodeParams struct {
	Email string
}

type VerifyCodeParams struct {
	Email string
	Code  string
}

type SendEmailParams struct {
	To       string
	Subject  string
	HTMLBody string
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.EmailProvider == nil {
		return nil, errors.NewInvalidInputError("email provider is required")
	}
	if deps.CodeStore == nil {
		return nil, errors.NewInvalidInputError("code store is required")
	}
	if deps.Renderer == nil {
		return nil, errors.NewInvalidInputError("renderer is required")
	}
	if deps.Config == nil {
		return nil, errors.NewInvalidInputError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewInvalidInputError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewInvalidInputError("metrics collector is required")
	}

	uc := &UseCase{
		emailProvider: deps.EmailProvider,
		codeStore:     deps.CodeStore,
		renderer:      deps.Renderer,
		generate:      deps.Generator,
		config:        deps.Config,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		now:           deps.Clock,
	}
	if uc.generate == nil {
		uc.generate = GenerateNumericCode
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc, nil
}

// ValidateEmail applies the form rules: at least three characters and a
// well-formed address.
func ValidateEmail(email string) error {
	if !validation.HasMinLength(email, validation.MinEmailLength) {
		return errors.NewInvalidInputError(MsgEmailRequired)
	}
	if !validation.IsValidEmail(email) {
		return errors.NewInvalidInputError(MsgInvalidEmail)
	}
	return nil
}

// SendCode issues a fresh one-time code for params.Email and delivers it in a
// single attempt. Any previously issued code for the address is replaced.
func (uc *UseCase) SendCode(ctx context.Context, params SendCodeParams) (ports.DeliveryResult, error) {
	if err := ValidateEmail(params.Email); err != nil {
		return ports.DeliveryResult{}, err
	}

	recipient := strings.TrimSpace(params.Email)
	codeCfg := uc.config.GetCodeConfig()

	value, err := uc.generate(codeCfg.Length)
	if err != nil {
		return ports.DeliveryResult{}, fmt.Errorf("generate code: %w", err)
	}

	code := NewCode(recipient, value, codeCfg.TTL, uc.now())
	if err := uc.codeStore.Save(ctx, uc.convertToPortsCode(code)); err != nil {
		return ports.DeliveryResult{}, fmt.Errorf("store code: %w", err)
	}
	uc.metrics.RecordCodeIssued()

	html, err := uc.renderer.RenderCode(mailtemplate.CodeTemplateParams{
		Code:  code.Value,
		Intro: codeCfg.Intro,
	})
	if err != nil {
		uc.discardCode(ctx, code.Email)
		return ports.DeliveryResult{}, errors.Wrap(errors.ErrorTypeUnknown, "render code email", err)
	}

	result, err := uc.deliver(ctx, ports.EmailRequest{
		To:       recipient,
		Subject:  uc.config.GetEmailConfig().Subject,
		HTMLBody: html,
	})
	if err != nil {
		uc.discardCode(ctx, code.Email)
		return ports.DeliveryResult{}, fmt.Errorf("send code email: %w", err)
	}

	uc.logger.Info("Verification code sent",
		ports.F("email", recipient),
		ports.F("provider", result.Provider),
		ports.F("messageID", result.MessageID),
		ports.F("expiresAt", code.ExpiresAt))
	return result, nil
}

// VerifyCode redeems a code. A matching, unexpired code is consumed.
func (uc *UseCase) VerifyCode(ctx context.Context, params VerifyCodeParams) error {
	if err := ValidateEmail(params.Email); err != nil {
		return err
	}
	submitted := strings.TrimSpace(params.Code)
	if submitted == "" {
		return errors.NewInvalidInputError(MsgCodeRequired)
	}
	if !validation.IsValidCode(submitted) {
		uc.metrics.RecordVerification(OutcomeMismatch)
		return errors.NewCodeMismatchError(MsgInvalidCode)
	}

	email := NormalizeEmail(params.Email)
	data, err := uc.codeStore.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.metrics.RecordVerification(OutcomeMissing)
			return errors.NewCodeMismatchError(MsgInvalidCode)
		}
		return fmt.Errorf("find code: %w", err)
	}

	maxAttempts := uc.config.GetCodeConfig().MaxAttempts
	code := uc.convertFromPortsCode(data)
	if code.IsExpired(uc.now()) {
		uc.metrics.RecordVerification(OutcomeExpired)
		uc.discardCode(ctx, email)
		return errors.NewCodeMismatchError(MsgInvalidCode)
	}
	if maxAttempts > 0 && code.Attempts >= maxAttempts {
		uc.metrics.RecordVerification(OutcomeLocked)
		uc.discardCode(ctx, email)
		return errors.NewCodeMismatchError(MsgInvalidCode)
	}
	if !code.Matches(submitted) {
		return uc.recordMismatch(ctx, email, maxAttempts)
	}

	// Only the request that removes the code redeems it.
	if err := uc.codeStore.ConsumeByEmail(ctx, email, code.Hash); err != nil {
		if errors.IsNotFoundError(err) {
			uc.metrics.RecordVerification(OutcomeMissing)
			return errors.NewCodeMismatchError(MsgInvalidCode)
		}
		return fmt.Errorf("consume code: %w", err)
	}

	uc.metrics.RecordVerification(OutcomeVerified)
	uc.logger.Info("Verification code redeemed", ports.F("email", email))
	return nil
}

// SendEmail delivers an arbitrary pre-rendered HTML message.
func (uc *UseCase) SendEmail(ctx context.Context, params SendEmailParams) (ports.DeliveryResult, error) {
	if err := ValidateEmail(params.To); err != nil {
		return ports.DeliveryResult{}, err
	}
	if strings.TrimSpace(params.Subject) == "" {
		return ports.DeliveryResult{}, errors.NewInvalidInputError("subject is required")
	}
	if strings.TrimSpace(params.HTMLBody) == "" {
		return ports.DeliveryResult{}, errors.NewInvalidInputError("body is required")
	}

	return uc.deliver(ctx, ports.EmailRequest{
		To:       strings.TrimSpace(params.To),
		Subject:  params.Subject,
		HTMLBody: params.HTMLBody,
	})
}

// PurgeExpired removes codes that can no longer be redeemed.
func (uc *UseCase) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := uc.codeStore.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired codes: %w", err)
	}
	if removed > 0 {
		uc.logger.Info("Expired verification codes purged", ports.F("count", removed))
	}
	return removed, nil
}

// deliver performs exactly one provider call bounded by the configured timeout.
func (uc *UseCase) deliver(ctx context.Context, req ports.EmailRequest) (ports.DeliveryResult, error) {
	timeout := uc.config.GetEmailConfig().SendTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := uc.now()
	result, err := uc.emailProvider.Send(ctx, req)
	uc.metrics.RecordDelivery(uc.emailProvider.Name(), err == nil, uc.now().Sub(started))
	if err != nil {
		uc.logger.Error("Email delivery failed",
			ports.F("error", err),
			ports.F("provider", uc.emailProvider.Name()),
			ports.F("to", req.To))
		return ports.DeliveryResult{}, err
	}

	return result, nil
}

func (uc *UseCase) recordMismatch(ctx context.Context, email string, maxAttempts int) error {
	attempts, err := uc.codeStore.RecordFailedAttempt(ctx, email, maxAttempts)
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("record failed attempt: %w", err)
	}

	if maxAttempts > 0 && attempts >= maxAttempts {
		uc.metrics.RecordVerification(OutcomeLocked)
		uc.logger.Warn("Verification code discarded after too many attempts",
			ports.F("email", email),
			ports.F("attempts", attempts))
	} else {
		uc.metrics.RecordVerification(OutcomeMismatch)
	}
	return errors.NewCodeMismatchError(MsgInvalidCode)
}

// discardCode outlives request cancellation so a code never survives a failed send.
func (uc *UseCase) discardCode(ctx context.Context, email string) {
	ctx = context.WithoutCancel(ctx)
	if err := uc.codeStore.DeleteByEmail(ctx, email); err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warn("Failed to discard verification code", ports.F("error", err), ports.F("email", email))
	}
}

func (uc *UseCase) convertToPortsCode(code *Code) *ports.CodeData {
	return &ports.CodeData{
		ID:        code.ID,
		Email:     code.Email,
		CodeHash:  code.Hash,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
}

func (uc *UseCase) convertFromPortsCode(data *ports.CodeData) *Code {
	return &Code{
		ID:        data.ID,
		Email:     data.Email,
		Hash:      data.CodeHash,
		Attempts:  data.Attempts,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
