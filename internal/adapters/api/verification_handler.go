package api

import (
	_ "embed"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"xisms.app/internal/core/verification"
	"xisms.app/pkg/errors"
)

const (
	msgSendFailed   = "Failed to process email request"
	msgVerifyFailed = "Failed to verify code"
)

//go:embed static/index.html
var indexHTML []byte

// SendCodeRequest represents the submitted form of the code request page
type SendCodeRequest struct {
	Email string `json:"email" form:"email" binding:"required,min=3,emailaddr"`
}

// VerifyCodeRequest represents a code redemption
type VerifyCodeRequest struct {
	Email string `json:"email" form:"email" binding:"required,min=3,emailaddr"`
	Code  string `json:"code" form:"code" binding:"required"`
}

// index handles GET / requests
func (s *HTTPServerAdapter) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// sendCode handles POST / and POST /api/send-code requests
func (s *HTTPServerAdapter) sendCode(c *gin.Context) {
	var httpReq SendCodeRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		slog.Debug("Send code request rejected", "error", err)
		s.handleError(c, bindingError(err, verification.MsgEmailRequired), msgSendFailed)
		return
	}

	result, err := s.verificationUseCase.SendCode(c.Request.Context(), verification.SendCodeParams{
		Email: httpReq.Email,
	})
	state := verification.TerminalState(err)
	if err != nil {
		if state == verification.StateFailed {
			slog.Error("Error processing email request", "error", err, "email", httpReq.Email, "state", state.String())
		}
		s.handleError(c, err, msgSendFailed)
		return
	}

	slog.Debug("Code email sent", "email", httpReq.Email, "messageID", result.MessageID, "state", state.String())
	c.JSON(http.StatusOK, Response{Success: true})
}

// verifyCode handles POST /api/verify-code requests
func (s *HTTPServerAdapter) verifyCode(c *gin.Context) {
	var httpReq VerifyCodeRequest
	if err := c.ShouldBind(&httpReq); err != nil {
		slog.Debug("Verify code request rejected", "error", err)
		s.handleError(c, bindingError(err, verification.MsgCodeRequired), msgVerifyFailed)
		return
	}

	err := s.verificationUseCase.VerifyCode(c.Request.Context(), verification.VerifyCodeParams{
		Email: httpReq.Email,
		Code:  httpReq.Code,
	})
	if err != nil {
		if !errors.IsInvalidInputError(err) && !errors.IsCodeMismatchError(err) {
			slog.Error("Error verifying code", "error", err, "email", httpReq.Email)
		}
		s.handleError(c, err, msgVerifyFailed)
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

// bindingError turns a bind failure into the message shown to the client.
// Failures on the email field take precedence over other fields.
func bindingError(err error, fallback string) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewInvalidInputError(verification.MsgEmailRequired)
	}

	for _, fe := range verrs {
		if fe.Field() != "Email" {
			continue
		}
		if fe.Tag() == "emailaddr" {
			return errors.NewInvalidInputError(verification.MsgInvalidEmail)
		}
		return errors.NewInvalidInputError(verification.MsgEmailRequired)
	}
	return errors.NewInvalidInputError(fallback)
}
