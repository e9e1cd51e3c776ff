package salonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// SignUp регистрирует пользователя по номеру телефона
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResult, error) {
	if strings.TrimSpace(req.Mobile) == "" {
		return nil, fmt.Errorf("%w: mobile is required", ErrInvalidInput)
	}

	body, err := jsonBody(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInvalidInput, err)
	}

	resp, err := c.do(ctx, request{
		operation:   "sign_up",
		method:      http.MethodPost,
		path:        "/sign_up",
		body:        body,
		contentType: "application/json",
	})
	if err != nil {
		c.log.Error("SignUp: request failed for mobile=%s: %v", req.Mobile, err)
		return nil, newAPIError(ErrSignUpFailed, 0, "", msgSignUpFailed)
	}

	if !resp.ok() {
		c.log.Warn("SignUp: rejected for mobile=%s, status=%d", req.Mobile, resp.status)
		return nil, newAPIError(ErrSignUpFailed, resp.status, resp.message(), msgSignUpFailed)
	}

	c.log.Info("SignUp: code requested for mobile=%s", req.Mobile)
	return &SignUpResult{Message: resp.message()}, nil
}

// Verify обменивает одноразовый код на bearer токен
func (c *Client) Verify(ctx context.Context, mobile, code string) (*VerifyResult, error) {
	if strings.TrimSpace(mobile) == "" || strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: mobile and code are required", ErrInvalidInput)
	}

	form := url.Values{}
	form.Set("mobile", mobile)
	form.Set("code", code)

	resp, err := c.do(ctx, request{
		operation:   "verify",
		method:      http.MethodPost,
		path:        "/verify",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		c.log.Error("Verify: request failed for mobile=%s: %v", mobile, err)
		return nil, newAPIError(ErrVerifyFailed, 0, "", msgVerifyFailed)
	}

	if !resp.ok() {
		c.log.Warn("Verify: rejected for mobile=%s, status=%d", mobile, resp.status)
		return nil, newAPIError(ErrVerifyFailed, resp.status, resp.message(), msgVerifyFailed)
	}

	var payload verifyResponse
	if err := json.Unmarshal(unwrap(resp.body, "data"), &payload); err != nil {
		c.log.Error("Verify: failed to decode response for mobile=%s: %v", mobile, err)
		return nil, newAPIError(ErrVerifyFailed, resp.status, "", msgVerifyFailed)
	}

	token := payload.Token
	if token == "" {
		token = payload.AccessToken
	}
	if token == "" {
		c.log.Warn("Verify: response without token for mobile=%s", mobile)
		return nil, newAPIError(ErrVerifyFailed, resp.status, resp.message(), msgVerifyFailed)
	}

	name := payload.User.Name
	if name == "" {
		name = payload.User.Username
	}

	c.log.Info("Verify: token issued for mobile=%s", mobile)
	return &VerifyResult{Token: token, Name: name}, nil
}

// authorize проверяет наличие токена до любого сетевого вызова
func authorize(sess *domain.SessionContext) error {
	if !sess.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return nil
}
