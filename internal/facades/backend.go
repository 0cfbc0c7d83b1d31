package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
)

// DefaultTimeout bounds every backend call unless overridden.
const DefaultTimeout = 15 * time.Second

// maxBodySize caps how much of a backend response is read.
const maxBodySize = 4 << 20

// ErrUnusableBaseURL is returned when discovery yields no absolute http(s) URL.
var ErrUnusableBaseURL = errors.New("discovery returned no usable url")

// BackendHTTPFacade talks to the gaming backend and its discovery endpoint.
// Every method returns the decoded payload together with the HTTP status;
// deciding what a status means is left to the caller. Nothing is retried.
type BackendHTTPFacade struct {
	discoveryURL string
	siteCode     string
	client       *http.Client
}

// NewBackendHTTPFacade creates a facade. A zero timeout means DefaultTimeout.
func NewBackendHTTPFacade(discoveryURL, siteCode string, timeout time.Duration) *BackendHTTPFacade {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BackendHTTPFacade{
		discoveryURL: discoveryURL,
		siteCode:     siteCode,
		client:       &http.Client{Timeout: timeout},
	}
}

// DiscoverAPIBase resolves the backend origin from the remote configuration host.
func (f *BackendHTTPFacade) DiscoverAPIBase(ctx context.Context) (string, error) {
	u, err := url.Parse(f.discoveryURL)
	if err != nil {
		return "", fmt.Errorf("parse discovery url: %w", err)
	}
	q := u.Query()
	q.Set("site_code", f.siteCode)
	u.RawQuery = q.Encode()

	var resp models.DiscoveryResponse
	status, err := f.do(ctx, http.MethodGet, u.String(), "", nil, &resp)
	if err != nil {
		logger.Log.Errorw("failed to fetch base url", "url", u.String(), "error", err)
		return "", err
	}
	if status != http.StatusOK {
		logger.Log.Errorw("unexpected discovery status", "url", u.String(), "status", status)
		return "", fmt.Errorf("discovery status %d", status)
	}

	base, err := normalizeBaseURL(resp.URL)
	if err != nil {
		logger.Log.Errorw("invalid base url", "value", resp.URL, "error", err)
		return "", err
	}

	logger.Log.Infow("base url fetched", "url", base)
	return base, nil
}

// Login exchanges credentials for a token.
func (f *BackendHTTPFacade) Login(ctx context.Context, baseURL string, req models.LoginRequest) (*models.LoginResponse, int, error) {
	var resp models.LoginResponse
	status, err := f.do(ctx, http.MethodPost, baseURL+"/api/login_user", "", req, &resp)
	if err != nil {
		return nil, status, err
	}
	return &resp, status, nil
}

// GetUser returns the authenticated user's profile.
func (f *BackendHTTPFacade) GetUser(ctx context.Context, baseURL, token string) (*models.UserProfile, int, error) {
	var resp models.UserProfile
	status, err := f.do(ctx, http.MethodGet, baseURL+"/api/user", token, nil, &resp)
	if err != nil {
		return nil, status, err
	}
	return &resp, status, nil
}

// GetGameCategories returns the game catalog.
func (f *BackendHTTPFacade) GetGameCategories(ctx context.Context, baseURL, token string) (*models.GameCategoriesResponse, int, error) {
	var resp models.GameCategoriesResponse
	status, err := f.do(ctx, http.MethodGet, baseURL+"/api/player/game_categories", token, nil, &resp)
	if err != nil {
		return nil, status, err
	}
	return &resp, status, nil
}

// GetGameBalance returns the balance held inside one game.
func (f *BackendHTTPFacade) GetGameBalance(ctx context.Context, baseURL, token string, gameID models.GameID) (*models.GameBalanceResponse, int, error) {
	endpoint := fmt.Sprintf("%s/api/player/game/%s/balance", baseURL, url.PathEscape(gameID.String()))

	var resp models.GameBalanceResponse
	status, err := f.do(ctx, http.MethodGet, endpoint, token, nil, &resp)
	if err != nil {
		return nil, status, err
	}
	return &resp, status, nil
}

// LoginToGame moves points into a game. The response body is not used.
func (f *BackendHTTPFacade) LoginToGame(ctx context.Context, baseURL, token string, req models.GameLoginRequest) (int, error) {
	return f.do(ctx, http.MethodPost, baseURL+"/api/player/game/login", token, req, nil)
}

// GetLinks returns the website game links.
func (f *BackendHTTPFacade) GetLinks(ctx context.Context, baseURL, token string) (*models.LinksResponse, int, error) {
	var resp models.LinksResponse
	status, err := f.do(ctx, http.MethodGet, baseURL+"/api/website/links", token, nil, &resp)
	if err != nil {
		return nil, status, err
	}
	return &resp, status, nil
}

// do performs a JSON request. out is decoded only for 2xx responses with a body;
// a body that fails to decode on a 2xx response is an error.
func (f *BackendHTTPFacade) do(ctx context.Context, method, endpoint, token string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("backend request failed",
			"method", method,
			"url", endpoint,
			"duration", time.Since(start),
			"error", err,
		)
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	logger.Log.Infow("backend request",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"response_size", len(raw),
	)

	if err != nil {
		return resp.StatusCode, err
	}
	if out == nil || resp.StatusCode < 200 || resp.StatusCode >= 300 || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return resp.StatusCode, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrUnusableBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrUnusableBaseURL
	}
	return strings.TrimRight(u.String(), "/"), nil
}
