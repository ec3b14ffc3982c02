package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stepwise-hq/stepwise/pkg/logger"
)

// HTTPProvider talks to an identitytoolkit-style REST identity provider.
type HTTPProvider struct {
	client *resty.Client
	apiKey string
}

// HTTPConfig configures the identity provider client.
type HTTPConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewHTTPProvider builds a provider client with the given base URL and key.
func NewHTTPProvider(cfg HTTPConfig) *HTTPProvider {
	client := resty.New().SetBaseURL(cfg.BaseURL)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &HTTPProvider{client: client, apiKey: cfg.APIKey}
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type tokenResponse struct {
	LocalID string `json:"localId"`
	IDToken string `json:"idToken"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"localId"`
	} `json:"users"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *HTTPProvider) SignUp(ctx context.Context, email, password string) (*Account, error) {
	out := &tokenResponse{}
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(&credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(out).
		SetError(out).
		Post("/v1/accounts:signUp")
	if err != nil {
		return nil, fmt.Errorf("identity provider signUp call failed: %w", err)
	}
	if resp.IsError() {
		return nil, classifyProviderError(ctx, "signUp", resp.StatusCode(), out.Error.Message)
	}
	return &Account{UID: out.LocalID, Token: out.IDToken}, nil
}

func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (*Account, error) {
	out := &tokenResponse{}
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(&credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(out).
		SetError(out).
		Post("/v1/accounts:signInWithPassword")
	if err != nil {
		return nil, fmt.Errorf("identity provider signIn call failed: %w", err)
	}
	if resp.IsError() {
		return nil, classifyProviderError(ctx, "signIn", resp.StatusCode(), out.Error.Message)
	}
	return &Account{UID: out.LocalID, Token: out.IDToken}, nil
}

func (p *HTTPProvider) Verify(ctx context.Context, token string) (string, error) {
	out := &lookupResponse{}
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(&lookupRequest{IDToken: token}).
		SetResult(out).
		SetError(out).
		Post("/v1/accounts:lookup")
	if err != nil {
		return "", fmt.Errorf("identity provider lookup call failed: %w", err)
	}
	if resp.IsError() || len(out.Users) == 0 {
		return "", ErrInvalidToken
	}
	return out.Users[0].LocalID, nil
}

// classifyProviderError maps provider error payloads onto the identity
// error taxonomy by message matching, the same way the provider documents
// its own error codes.
func classifyProviderError(ctx context.Context, op string, status int, message string) error {
	log := logger.FromContext(ctx)
	log.Warn("identity provider rejected request", "op", op, "status", status, "message", message)
	upper := strings.ToUpper(message)
	switch {
	case strings.Contains(upper, "EMAIL_EXISTS"):
		return ErrEmailTaken
	case strings.Contains(upper, "EMAIL_NOT_FOUND"),
		strings.Contains(upper, "INVALID_PASSWORD"),
		strings.Contains(upper, "INVALID_LOGIN_CREDENTIALS"):
		return ErrInvalidCredentials
	case strings.Contains(upper, "INVALID_ID_TOKEN"), strings.Contains(upper, "TOKEN_EXPIRED"):
		return ErrInvalidToken
	default:
		return fmt.Errorf("identity provider %s failed with status %d: %s", op, status, message)
	}
}
