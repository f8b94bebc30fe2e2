package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"accountcli/internal/models"
)

// HTTPClient talks JSON over HTTP to the account service.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the service at baseURL. tokens may be
// nil for a client that never authenticates.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// envelope is the common response body shape. Status and Error drive the
// content-level error channel; Data is decoded further per operation.
type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

// do issues one request and decodes the response body into an envelope.
// A nil error means the server answered with a 2xx status; the envelope may
// still carry a content-level error for operations that use that channel.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading auth token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	var env envelope
	if len(raw) > 0 {
		// a malformed body on a 2xx is still a usable response for callers
		// that ignore the payload
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, &Error{Kind: KindAPI, Message: msg}
	}

	return &env, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email string) error {
	body := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{name, email}
	_, err := c.do(ctx, http.MethodPost, "/auth/register", body)
	return err
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, otp, email, password string) error {
	body := struct {
		OTP      string `json:"otp"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{otp, email, password}
	_, err := c.do(ctx, http.MethodPost, "/auth/verify-otp", body)
	return err
}

// Login authenticates and returns the issued token. Besides the transport
// status, the login body carries its own error channel: status "error" means
// a failed login even on a 2xx response.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	env, err := c.do(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return "", err
	}

	if env.Status == "error" {
		msg := env.Error
		if msg == "" {
			msg = "Login failed"
		}
		return "", &Error{Kind: KindAPI, Message: msg}
	}

	var data struct {
		Token string `json:"token"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return "", fmt.Errorf("decoding login response: %w", err)
		}
	}
	if data.Token == "" {
		return "", fmt.Errorf("login response did not include a token")
	}
	return data.Token, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	_, err := c.do(ctx, http.MethodPost, "/auth/forgot-password", body)
	return err
}

func (c *HTTPClient) ResetPassword(ctx context.Context, otp, email, newPassword string) error {
	body := struct {
		OTP         string `json:"otp"`
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}{otp, email, newPassword}
	_, err := c.do(ctx, http.MethodPost, "/auth/reset-password", body)
	return err
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/user/profile", nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, name string) error {
	body := struct {
		Name string `json:"name"`
	}{name}
	_, err := c.do(ctx, http.MethodPut, "/user/update-profile", body)
	return err
}

func (c *HTTPClient) UpdateEmail(ctx context.Context, newEmail string) error {
	body := struct {
		NewEmail string `json:"newEmail"`
	}{newEmail}
	_, err := c.do(ctx, http.MethodPut, "/user/update-email", body)
	return err
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{currentPassword, newPassword}
	_, err := c.do(ctx, http.MethodPut, "/user/update-password", body)
	return err
}
