package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/tzy-lab/paperdesk/internal/config"
	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// decodeEnvelope maps transport-level failures, unwraps the response
// envelope, and decodes the payload into out (which may be nil for
// operations without a payload). A success=false envelope becomes
// [ErrBackendRejected] carrying the backend's message.
func decodeEnvelope(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "no message"
		}
		return fmt.Errorf("%w: %s", ErrBackendRejected, msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode envelope payload: %w", err)
		}
	}

	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and decodes the login payload from the envelope. On
// success the returned token is stored via SetToken. A 401 response or a
// success=false envelope is reported as [ErrInvalidCredentials].
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}

	var payload models.LoginPayload
	if err = decodeEnvelope(resp, &payload); err != nil {
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrBackendRejected) {
			return models.Session{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
		}
		return models.Session{}, err
	}

	h.SetToken(payload.Token)

	return models.Session{
		User: models.User{
			Username: payload.Username,
			UserType: payload.UserType,
			Email:    payload.Email,
		},
		Token: payload.Token,
	}, nil
}

// Register implements [ServerAdapter]. It POSTs the new account to
// POST /api/auth/register. Registration issues no token; callers log in
// afterwards. A 409 response is reported as [ErrUserAlreadyExists].
func (h *httpServerAdapter) Register(ctx context.Context, username, password, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password, "email": email}).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	var payload models.RegisterPayload
	return decodeEnvelope(resp, &payload)
}

// ValidateSession implements [ServerAdapter]. It POSTs to
// POST /api/auth/validate with the stored bearer token. An invalid or expired
// token is reported as [ErrUnauthorized].
func (h *httpServerAdapter) ValidateSession(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/validate")
	if err != nil {
		return fmt.Errorf("validate session request: %w", err)
	}

	var payload models.ValidatePayload
	if err = decodeEnvelope(resp, &payload); err != nil {
		if errors.Is(err, ErrBackendRejected) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, err)
		}
		return err
	}
	if !payload.Success {
		return ErrUnauthorized
	}

	return nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /api/auth/logout with
// the stored bearer token and clears the token locally regardless of the
// outcome.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")

	// local token goes away no matter what the backend said
	h.SetToken("")

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return decodeEnvelope(resp, nil)
}

// Subjects implements [ServerAdapter]. It GETs the full catalog from
// GET /api/subjects and decodes the subject list from the envelope.
func (h *httpServerAdapter) Subjects(ctx context.Context) ([]models.Subject, error) {
	resp, err := h.authedRequest(ctx).Get("/api/subjects")
	if err != nil {
		return nil, fmt.Errorf("subjects request: %w", err)
	}

	var subjects []models.Subject
	if err = decodeEnvelope(resp, &subjects); err != nil {
		return nil, err
	}

	return subjects, nil
}

// SearchPapers implements [ServerAdapter]. It GETs
// GET /api/papers/search?q= and decodes the hit list from the envelope. An
// empty query short-circuits to an empty result without a network call.
func (h *httpServerAdapter) SearchPapers(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		Get("/api/papers/search")
	if err != nil {
		return nil, fmt.Errorf("search papers request: %w", err)
	}

	var results []models.SearchResult
	if err = decodeEnvelope(resp, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
