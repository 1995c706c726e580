package verification

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"xisms.app/internal/adapters/external"
	"xisms.app/internal/core/mailtemplate"
	mocks "xisms.app/internal/mocks"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

const testIntro = "Further verification is required to access your account."

var testNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

type testDeps struct {
	provider *mocks.EmailProvider
	store    *mocks.CodeStore
	config   *mocks.ConfigProvider
	logger   *mocks.Logger
	metrics  *mocks.MetricsCollector
}

func newTestUseCase(t *testing.T, generator Generator) (*UseCase, testDeps) {
	t.Helper()

	deps := testDeps{
		provider: mocks.NewEmailProvider(t),
		store:    mocks.NewCodeStore(t),
		config:   mocks.NewConfigProvider(t),
		logger:   mocks.NewLogger(t),
		metrics:  mocks.NewMetricsCollector(t),
	}

	deps.config.EXPECT().GetCodeConfig().Return(ports.CodeConfig{
		Length:      6,
		TTL:         10 * time.Minute,
		Intro:       testIntro,
		MaxAttempts: 5,
	}).Maybe()
	deps.config.EXPECT().GetEmailConfig().Return(ports.EmailConfig{
		Provider:    "ses",
		Subject:     "Your XiSMS Code",
		SendTimeout: 5 * time.Second,
	}).Maybe()

	deps.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	deps.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	deps.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	deps.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	deps.provider.EXPECT().Name().Return("ses").Maybe()
	deps.metrics.EXPECT().RecordDelivery(mock.Anything, mock.Anything, mock.Anything).Maybe()
	deps.metrics.EXPECT().RecordCodeIssued().Maybe()
	deps.metrics.EXPECT().RecordVerification(mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		EmailProvider: deps.provider,
		CodeStore:     deps.store,
		Renderer:      mailtemplate.NewRenderer(mailtemplate.DefaultBrand),
		Generator:     generator,
		Config:        deps.config,
		Logger:        deps.logger,
		Metrics:       deps.metrics,
		Clock:         func() time.Time { return testNow },
	})
	require.NoError(t, err)

	return uc, deps
}

func fixedGenerator(code string) Generator {
	return func(int) (string, error) { return code, nil }
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsInvalidInputError(err))

	_, err = NewUseCase(UseCaseDependencies{EmailProvider: mocks.NewEmailProvider(t)})
	assert.Error(t, err)
}

func TestUseCase_SendCode_Success(t *testing.T) {
	uc, deps := newTestUseCase(t, fixedGenerator("123456"))

	deps.store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *ports.CodeData) bool {
		return c.Email == "a@b.com" &&
			c.CodeHash == HashCode("a@b.com", "123456") &&
			c.ExpiresAt.Equal(testNow.Add(10*time.Minute))
	})).Return(nil).Once()

	deps.provider.EXPECT().Send(mock.Anything, mock.MatchedBy(func(req ports.EmailRequest) bool {
		return req.To == "a@b.com" &&
			req.Subject == "Your XiSMS Code" &&
			assert.Contains(t, req.HTMLBody, "123456") &&
			assert.Contains(t, req.HTMLBody, testIntro)
	})).Return(ports.DeliveryResult{Success: true, MessageID: "msg-1", Provider: "ses"}, nil).Once()

	result, err := uc.SendCode(context.Background(), SendCodeParams{Email: "a@b.com"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "msg-1", result.MessageID)
	deps.provider.AssertNumberOfCalls(t, "Send", 1)
}

func TestUseCase_SendCode_AppliesTimeout(t *testing.T) {
	uc, deps := newTestUseCase(t, fixedGenerator("123456"))

	deps.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.provider.EXPECT().Send(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(ports.DeliveryResult{Success: true}, nil).Once()

	_, err := uc.SendCode(context.Background(), SendCodeParams{Email: "a@b.com"})
	require.NoError(t, err)
}

func TestUseCase_SendCode_RejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		message string
	}{
		{name: "Empty", email: "", message: MsgEmailRequired},
		{name: "SingleChar", email: "x", message: MsgEmailRequired},
		{name: "TwoChars", email: "ab", message: MsgEmailRequired},
		{name: "Malformed", email: "not-an-email", message: MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUseCase(t, fixedGenerator("123456"))

			_, err := uc.SendCode(context.Background(), SendCodeParams{Email: tt.email})

			require.Error(t, err)
			assert.True(t, errors.IsInvalidInputError(err))
			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message)
			deps.provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			deps.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_SendCode_DeliveryFailure(t *testing.T) {
	uc, deps := newTestUseCase(t, fixedGenerator("123456"))

	deps.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.provider.EXPECT().Send(mock.Anything, mock.Anything).
		Return(ports.DeliveryResult{}, errors.NewDeliveryFailedError("ses send email", "Throttling", fmt.Errorf("rate exceeded"))).Once()
	deps.store.EXPECT().DeleteByEmail(mock.Anything, "a@b.com").Return(nil).Once()

	_, err := uc.SendCode(context.Background(), SendCodeParams{Email: "a@b.com"})

	require.Error(t, err)
	assert.True(t, errors.IsDeliveryFailedError(err))
	assert.Equal(t, StateFailed, TerminalState(err))
	deps.provider.AssertNumberOfCalls(t, "Send", 1)
}

func TestUseCase_SendCode_StoreFailure(t *testing.T) {
	uc, deps := newTestUseCase(t, fixedGenerator("123456"))

	deps.store.EXPECT().Save(mock.Anything, mock.Anything).
		Return(errors.NewCacheError("redis set failed", fmt.Errorf("conn refused")))

	_, err := uc.SendCode(context.Background(), SendCodeParams{Email: "a@b.com"})

	require.Error(t, err)
	assert.Equal(t, StateFailed, TerminalState(err))
	deps.provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUseCase_SendCode_GeneratorFailure(t *testing.T) {
	uc, deps := newTestUseCase(t, func(int) (string, error) {
		return "", fmt.Errorf("entropy exhausted")
	})

	_, err := uc.SendCode(context.Background(), SendCodeParams{Email: "a@b.com"})

	require.Error(t, err)
	assert.Equal(t, StateFailed, TerminalState(err))
	deps.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUseCase_SendCode_RenderFailureIsServerSide(t *testing.T) {
	uc, deps := newTestUseCase(t, fixedGenerator(" "))

	deps.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.store.EXPECT().DeleteByEmail(mock.Anything, "a@b.com").Return(nil)

	_, err := uc.SendCode(context.Background(), SendCodeParams{Email: "a@b.com"})

	require.Error(t, err)
	assert.Equal(t, StateFailed, TerminalState(err))
}

func TestUseCase_VerifyCode(t *testing.T) {
	stored := &ports.CodeData{
		ID:        "id-1",
		Email:     "a@b.com",
		CodeHash:  HashCode("a@b.com", "123456"),
		ExpiresAt: testNow.Add(5 * time.Minute),
		CreatedAt: testNow.Add(-5 * time.Minute),
	}

	t.Run("Match", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().ConsumeByEmail(mock.Anything, "a@b.com", stored.CodeHash).Return(nil).Once()

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "A@B.com", Code: "123456"})

		assert.NoError(t, err)
	})

	t.Run("AlreadyConsumed", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().ConsumeByEmail(mock.Anything, "a@b.com", stored.CodeHash).
			Return(errors.NewNotFoundError("code not found")).Once()

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "123456"})

		assert.True(t, errors.IsCodeMismatchError(err))
	})

	t.Run("Mismatch", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().RecordFailedAttempt(mock.Anything, "a@b.com", 5).Return(1, nil).Once()

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "000000"})

		assert.True(t, errors.IsCodeMismatchError(err))
		deps.store.AssertNotCalled(t, "ConsumeByEmail", mock.Anything, mock.Anything, mock.Anything)
		deps.store.AssertNotCalled(t, "DeleteByEmail", mock.Anything, mock.Anything)
	})

	t.Run("MismatchReachesLimit", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().RecordFailedAttempt(mock.Anything, "a@b.com", 5).Return(5, nil).Once()
		deps.metrics.ExpectedCalls = nil
		deps.metrics.EXPECT().RecordVerification(OutcomeLocked).Once()

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "000000"})

		assert.True(t, errors.IsCodeMismatchError(err))
	})

	t.Run("AttemptsExhausted", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		locked := *stored
		locked.Attempts = 5
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(&locked, nil)
		deps.store.EXPECT().DeleteByEmail(mock.Anything, "a@b.com").Return(nil).Once()

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "123456"})

		assert.True(t, errors.IsCodeMismatchError(err))
		deps.store.AssertNotCalled(t, "ConsumeByEmail", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AttemptStoreError", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().RecordFailedAttempt(mock.Anything, "a@b.com", 5).
			Return(0, errors.NewCacheError("redis down", fmt.Errorf("EOF")))

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "000000"})

		assert.Equal(t, errors.ErrorTypeCache, errors.TypeOf(err))
	})

	t.Run("Expired", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		expired := *stored
		expired.ExpiresAt = testNow.Add(-time.Second)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(&expired, nil)
		deps.store.EXPECT().DeleteByEmail(mock.Anything, "a@b.com").Return(nil).Once()

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "123456"})

		assert.True(t, errors.IsCodeMismatchError(err))
	})

	t.Run("Missing", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").
			Return((*ports.CodeData)(nil), errors.NewNotFoundError("code not found"))

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "123456"})

		assert.True(t, errors.IsCodeMismatchError(err))
	})

	t.Run("StoreError", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").
			Return((*ports.CodeData)(nil), errors.NewDatabaseError("query failed", fmt.Errorf("timeout")))

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "123456"})

		assert.Equal(t, errors.ErrorTypeDatabase, errors.TypeOf(err))
	})

	t.Run("BlankCode", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil)

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "  "})

		assert.True(t, errors.IsInvalidInputError(err))
	})

	t.Run("NonNumericCode", func(t *testing.T) {
		uc, deps := newTestUseCase(t, nil)

		err := uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "abcdef"})

		assert.True(t, errors.IsCodeMismatchError(err))
		deps.store.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestUseCase_SendEmail(t *testing.T) {
	uc, deps := newTestUseCase(t, nil)

	deps.provider.EXPECT().Send(mock.Anything, ports.EmailRequest{
		To:       "a@b.com",
		Subject:  "Welcome",
		HTMLBody: "<p>hi</p>",
	}).Return(ports.DeliveryResult{Success: true, MessageID: "m"}, nil).Once()

	result, err := uc.SendEmail(context.Background(), SendEmailParams{
		To:       " a@b.com ",
		Subject:  "Welcome",
		HTMLBody: "<p>hi</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "m", result.MessageID)
}

func TestUseCase_SendEmail_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	_, err := uc.SendEmail(context.Background(), SendEmailParams{To: "a@b.com", HTMLBody: "<p>x</p>"})
	assert.True(t, errors.IsInvalidInputError(err))

	_, err = uc.SendEmail(context.Background(), SendEmailParams{To: "a@b.com", Subject: "s"})
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestUseCase_PurgeExpired(t *testing.T) {
	uc, deps := newTestUseCase(t, nil)
	deps.store.EXPECT().DeleteExpired(mock.Anything).Return(int64(3), nil).Once()

	removed, err := uc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestUseCase_VerifyCode_ConcurrentRedeem(t *testing.T) {
	uc, deps := newTestUseCase(t, nil)
	stored := &ports.CodeData{
		ID:        "id-1",
		Email:     "a@b.com",
		CodeHash:  HashCode("a@b.com", "123456"),
		ExpiresAt: testNow.Add(5 * time.Minute),
	}

	ready := make(chan struct{})
	var found sync.WaitGroup
	found.Add(2)
	deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").
		Run(func(ctx context.Context, email string) {
			found.Done()
			<-ready
		}).
		Return(stored, nil).Twice()

	store := external.NewMemoryCodeStore()
	require.NoError(t, store.Save(context.Background(), &ports.CodeData{
		ID: stored.ID, Email: stored.Email, CodeHash: stored.CodeHash, ExpiresAt: time.Now().Add(time.Minute),
	}))
	deps.store.EXPECT().ConsumeByEmail(mock.Anything, "a@b.com", stored.CodeHash).
		RunAndReturn(store.ConsumeByEmail).Twice()

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- uc.VerifyCode(context.Background(), VerifyCodeParams{Email: "a@b.com", Code: "123456"})
		}()
	}
	found.Wait()
	close(ready)

	var redeemed, rejected int
	for i := 0; i < 2; i++ {
		if err := <-results; err == nil {
			redeemed++
		} else {
			assert.True(t, errors.IsCodeMismatchError(err))
			rejected++
		}
	}
	assert.Equal(t, 1, redeemed)
	assert.Equal(t, 1, rejected)
}

func TestUseCase_VerifyCode_CorrectCodeRefusedAfterLimit(t *testing.T) {
	store := external.NewMemoryCodeStore()
	config := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	provider := mocks.NewEmailProvider(t)

	config.EXPECT().GetCodeConfig().Return(ports.CodeConfig{Length: 6, TTL: 10 * time.Minute, MaxAttempts: 3}).Maybe()
	config.EXPECT().GetEmailConfig().Return(ports.EmailConfig{Subject: "Your XiSMS Code", SendTimeout: time.Second}).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordCodeIssued().Maybe()
	metrics.EXPECT().RecordDelivery(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordVerification(mock.Anything).Maybe()
	provider.EXPECT().Name().Return("ses").Maybe()
	provider.EXPECT().Send(mock.Anything, mock.Anything).Return(ports.DeliveryResult{Success: true}, nil).Once()

	uc, err := NewUseCase(UseCaseDependencies{
		EmailProvider: provider,
		CodeStore:     store,
		Renderer:      mailtemplate.NewRenderer(mailtemplate.DefaultBrand),
		Generator:     fixedGenerator("123456"),
		Config:        config,
		Logger:        logger,
		Metrics:       metrics,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = uc.SendCode(ctx, SendCodeParams{Email: "a@b.com"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		err := uc.VerifyCode(ctx, VerifyCodeParams{Email: "a@b.com", Code: "000000"})
		require.True(t, errors.IsCodeMismatchError(err))
	}

	err = uc.VerifyCode(ctx, VerifyCodeParams{Email: "a@b.com", Code: "123456"})
	assert.True(t, errors.IsCodeMismatchError(err))
	assert.Equal(t, 0, store.Len())
}

func TestUseCase_SendCode_DiscardSurvivesCanceledRequest(t *testing.T) {
	uc, deps := newTestUseCase(t, fixedGenerator("123456"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.provider.EXPECT().Send(mock.Anything, mock.Anything).
		Return(ports.DeliveryResult{}, errors.NewDeliveryFailedError("ses send email failed", "Canceled", context.Canceled)).Once()
	deps.store.EXPECT().DeleteByEmail(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), "a@b.com").Return(nil).Once()

	_, err := uc.SendCode(ctx, SendCodeParams{Email: "a@b.com"})

	assert.Equal(t, StateFailed, TerminalState(err))
}
