package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"xisms.app/internal/core/mailtemplate"
	"xisms.app/internal/core/verification"
	mocks "xisms.app/internal/mocks"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

const testIntro = "Further verification is required to access your account."

type fakeHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (f *fakeHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return f.results
}

type handlerDeps struct {
	router   *gin.Engine
	provider *mocks.EmailProvider
	store    *mocks.CodeStore
	health   *fakeHealthChecker
}

func setupVerificationTestRouter(t *testing.T) handlerDeps {
	gin.SetMode(gin.TestMode)

	provider := mocks.NewEmailProvider(t)
	store := mocks.NewCodeStore(t)
	cfg := mocks.NewConfigProvider(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)

	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	cfg.EXPECT().GetCodeConfig().Return(ports.CodeConfig{Length: 6, TTL: 10 * time.Minute, Intro: testIntro, MaxAttempts: 5}).Maybe()
	cfg.EXPECT().GetEmailConfig().Return(ports.EmailConfig{Subject: "Your XiSMS Code", SendTimeout: 5 * time.Second}).Maybe()

	provider.EXPECT().Name().Return("ses").Maybe()
	metrics.EXPECT().RecordDelivery(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordCodeIssued().Maybe()
	metrics.EXPECT().RecordVerification(mock.Anything).Maybe()

	useCase, err := verification.NewUseCase(verification.UseCaseDependencies{
		EmailProvider: provider,
		CodeStore:     store,
		Renderer:      mailtemplate.NewRenderer(mailtemplate.DefaultBrand),
		Config:        cfg,
		Logger:        logger,
		Metrics:       metrics,
	})
	require.NoError(t, err)

	health := &fakeHealthChecker{results: map[string]ports.HealthStatus{
		"email": {Component: "email", Status: ports.HealthStatusHealthy},
	}}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 8080},
		VerificationUseCase: useCase,
		HealthChecker:       health,
	})
	require.NoError(t, err)

	return handlerDeps{router: server.GetRouter(), provider: provider, store: store, health: health}
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestVerificationHandler_SendCode_Success(t *testing.T) {
	for _, path := range []string{"/", "/api/send-code"} {
		t.Run(path, func(t *testing.T) {
			deps := setupVerificationTestRouter(t)

			deps.store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *ports.CodeData) bool {
				return c.Email == "a@b.com"
			})).Return(nil).Once()
			deps.provider.EXPECT().Send(mock.Anything, mock.MatchedBy(func(req ports.EmailRequest) bool {
				return req.To == "a@b.com" && strings.Contains(req.HTMLBody, testIntro)
			})).Return(ports.DeliveryResult{Success: true, MessageID: "m-1", Provider: "ses"}, nil).Once()

			w := postForm(deps.router, path, url.Values{"email": {"a@b.com"}})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"success":true}`, w.Body.String())
		})
	}
}

func TestVerificationHandler_SendCode_JSONBody(t *testing.T) {
	deps := setupVerificationTestRouter(t)
	deps.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.provider.EXPECT().Send(mock.Anything, mock.Anything).Return(ports.DeliveryResult{Success: true}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/send-code", strings.NewReader(`{"email":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerificationHandler_SendCode_RejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		message string
	}{
		{name: "Missing", values: url.Values{}, message: verification.MsgEmailRequired},
		{name: "Empty", values: url.Values{"email": {""}}, message: verification.MsgEmailRequired},
		{name: "OneChar", values: url.Values{"email": {"x"}}, message: verification.MsgEmailRequired},
		{name: "TwoChars", values: url.Values{"email": {"ab"}}, message: verification.MsgEmailRequired},
		{name: "Malformed", values: url.Values{"email": {"not-an-email"}}, message: verification.MsgInvalidEmail},
		{name: "ConsecutiveDots", values: url.Values{"email": {"a..b@example.com"}}, message: verification.MsgInvalidEmail},
		{name: "LeadingDot", values: url.Values{"email": {".a@example.com"}}, message: verification.MsgInvalidEmail},
		{name: "TrailingDot", values: url.Values{"email": {"a.@example.com"}}, message: verification.MsgInvalidEmail},
		{name: "DisplayName", values: url.Values{"email": {"Bob <bob@example.com>"}}, message: verification.MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupVerificationTestRouter(t)

			w := postForm(deps.router, "/", tt.values)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error)
			deps.provider.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestVerificationHandler_SendCode_MalformedJSON(t *testing.T) {
	deps := setupVerificationTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/send-code", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, verification.MsgEmailRequired, decodeResponse(t, w).Error)
}

func TestVerificationHandler_SendCode_DeliveryFailure(t *testing.T) {
	deps := setupVerificationTestRouter(t)

	deps.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.store.EXPECT().DeleteByEmail(mock.Anything, "a@b.com").Return(nil)
	deps.provider.EXPECT().Send(mock.Anything, mock.Anything).
		Return(ports.DeliveryResult{}, errors.NewDeliveryFailedError("ses send email failed", "MessageRejected",
			fmt.Errorf("Email address is not verified"))).Once()

	w := postForm(deps.router, "/", url.Values{"email": {"a@b.com"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to process email request"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "MessageRejected")
}

func TestVerificationHandler_VerifyCode(t *testing.T) {
	stored := &ports.CodeData{
		ID:        "id-1",
		Email:     "a@b.com",
		CodeHash:  verification.HashCode("a@b.com", "123456"),
		ExpiresAt: time.Now().Add(5 * time.Minute),
		CreatedAt: time.Now(),
	}

	t.Run("Match", func(t *testing.T) {
		deps := setupVerificationTestRouter(t)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().ConsumeByEmail(mock.Anything, "a@b.com", stored.CodeHash).Return(nil).Once()

		w := postForm(deps.router, "/api/verify-code", url.Values{"email": {"a@b.com"}, "code": {"123456"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Mismatch", func(t *testing.T) {
		deps := setupVerificationTestRouter(t)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
		deps.store.EXPECT().RecordFailedAttempt(mock.Anything, "a@b.com", 5).Return(1, nil).Once()

		w := postForm(deps.router, "/api/verify-code", url.Values{"email": {"a@b.com"}, "code": {"000000"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, verification.MsgInvalidCode, decodeResponse(t, w).Error)
	})

	t.Run("MissingCode", func(t *testing.T) {
		deps := setupVerificationTestRouter(t)

		w := postForm(deps.router, "/api/verify-code", url.Values{"email": {"a@b.com"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, verification.MsgCodeRequired, decodeResponse(t, w).Error)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		deps := setupVerificationTestRouter(t)

		w := postForm(deps.router, "/api/verify-code", url.Values{"code": {"123456"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, verification.MsgEmailRequired, decodeResponse(t, w).Error)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		deps := setupVerificationTestRouter(t)
		deps.store.EXPECT().FindByEmail(mock.Anything, "a@b.com").
			Return(nil, errors.NewDatabaseError("query failed", fmt.Errorf("conn reset")))

		w := postForm(deps.router, "/api/verify-code", url.Values{"email": {"a@b.com"}, "code": {"123456"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, msgVerifyFailed, decodeResponse(t, w).Error)
	})
}

func TestServer_Index(t *testing.T) {
	deps := setupVerificationTestRouter(t)

	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `name="email"`)
}

func TestServer_Health(t *testing.T) {
	deps := setupVerificationTestRouter(t)

	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ports.HealthStatusHealthy, resp.Status)

	deps.health.results["codeStore"] = ports.HealthStatus{Component: "codeStore", Status: ports.HealthStatusUnhealthy, Error: "down"}
	w = httptest.NewRecorder()
	deps.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestServer_Metrics(t *testing.T) {
	deps := setupVerificationTestRouter(t)

	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.True(t, errors.IsInvalidInputError(err))

	_, err = NewHTTPServerAdapter(ServerOptions{VerificationUseCase: &verification.UseCase{}})
	assert.Error(t, err)
}
