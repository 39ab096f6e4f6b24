// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Acidburn0zzz/docsync/internal/config"
	"github.com/Acidburn0zzz/docsync/internal/logger"
	"github.com/Acidburn0zzz/docsync/internal/utils"
)

// tokenExpiryLeeway is subtracted from the token expiry when deciding whether
// to refresh before a call, so a token never expires mid-request.
const tokenExpiryLeeway = 30 * time.Second

type httpFunctionService struct {
	client      *resty.Client
	clientAppID string
	tokenSource TokenSource

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

type functionCallRequest struct {
	Name      string `json:"name"`
	Arguments []any  `json:"arguments"`
}

// NewHTTPFunctionService constructs an HTTP implementation of
// [RemoteFunctionService]. It normalizes and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// tokenSource may be nil, in which case expired tokens are sent as-is and the
// remote service's 401 response surfaces as [ErrUnauthorized].
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPFunctionService(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokenSource TokenSource, log *logger.Logger) (RemoteFunctionService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpFunctionService{
		client:      client,
		clientAppID: appCfg.ClientAppID,
		tokenSource: tokenSource,
		logger:      log,
	}, nil
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

// SetToken implements [RemoteFunctionService]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// calls.
func (h *httpFunctionService) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteFunctionService].
func (h *httpFunctionService) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CallFunction implements [RemoteFunctionService]. The function is invoked at
// POST /app/{clientAppID}/functions/call with a {name, arguments} body; the
// response body is decoded into result when result is non-nil.
func (h *httpFunctionService) CallFunction(ctx context.Context, name string, args []any, result any) error {
	return h.call(ctx, name, args, result, 0)
}

// CallFunctionWithTimeout implements [RemoteFunctionService].
func (h *httpFunctionService) CallFunctionWithTimeout(ctx context.Context, name string, args []any, result any, timeout time.Duration) error {
	return h.call(ctx, name, args, result, timeout)
}

func (h *httpFunctionService) call(ctx context.Context, name string, args []any, result any, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := h.ensureFreshToken(ctx); err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(functionCallRequest{Name: name, Arguments: args}).
		Post("/app/" + h.clientAppID + "/functions/call")
	if err != nil {
		// resty returns an error only on transport-level failures
		// (DNS, connection refused, timeout), all retryable.
		return fmt.Errorf("%w: call %s: %v", ErrTransientNetwork, name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("call %s: %w", name, err)
	}

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", name, err)
	}
	return nil
}

// ensureFreshToken refreshes the stored bearer token through the external
// token source when the current one is missing or about to expire.
func (h *httpFunctionService) ensureFreshToken(ctx context.Context) error {
	if h.tokenSource == nil {
		return nil
	}

	token := h.Token()
	if token != "" {
		expired, err := utils.TokenIsExpired(token, tokenExpiryLeeway)
		if err == nil && !expired {
			return nil
		}
		if err != nil {
			h.logger.Warn().Err(err).Msg("unreadable bearer token, refreshing")
		}
	}

	fresh, err := h.tokenSource.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("%w: refresh token: %v", ErrUnauthorized, err)
	}
	h.SetToken(fresh)
	return nil
}

func (h *httpFunctionService) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
