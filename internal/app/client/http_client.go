package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"utilibill/internal/app/client/config"
	"utilibill/internal/domain/employee"
	"utilibill/internal/domain/user"
)

// ErrUnauthorized is returned on a 401 so callers can prompt for a fresh
// login instead of showing a raw server error.
var ErrUnauthorized = errors.New("unauthorized")

type HTTPClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*HTTPClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &HTTPClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Utilibill-Client/1.0",
	}, nil
}

func (h *HTTPClient) SetToken(token string) {
	h.token = token
}

// HealthCheck verifies the server is reachable.
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func (h *HTTPClient) Login(ctx context.Context, login, password string) (string, error) {
	req := user.BaseRequest{Login: login, Password: password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", req)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *HTTPClient) Register(ctx context.Context, login, password string) error {
	req := user.BaseRequest{Login: login, Password: password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", req)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *HTTPClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/logout", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// ListEmployeeTypes fetches the employee-role lookup used by employee forms.
func (h *HTTPClient) ListEmployeeTypes(ctx context.Context) ([]employee.EmployeeType, error) {
	return fetchList[employee.EmployeeType](ctx, h, "/api/employee-types")
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request",
		slog.String("method", method),
		slog.String("url", req.URL.String()),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

func (h *HTTPClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response",
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

// Backend is the server-side face of one entity collection.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (int64, error)
	Update(ctx context.Context, id int64, item T) error
	Delete(ctx context.Context, id int64) error
}

// Resource is an HTTP-backed Backend for the REST collection at path.
type Resource[T any] struct {
	h    *HTTPClient
	path string
}

func NewResource[T any](h *HTTPClient, path string) *Resource[T] {
	return &Resource[T]{h: h, path: path}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	return fetchList[T](ctx, r.h, r.path)
}

func (r *Resource[T]) Create(ctx context.Context, item T) (int64, error) {
	resp, err := r.h.doRequest(ctx, http.MethodPost, r.path, item)
	if err != nil {
		return 0, err
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := r.h.parseResponse(resp, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int64, item T) error {
	resp, err := r.h.doRequest(ctx, http.MethodPut, r.path+"/"+strconv.FormatInt(id, 10), item)
	if err != nil {
		return err
	}
	return r.h.parseResponse(resp, nil)
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	resp, err := r.h.doRequest(ctx, http.MethodDelete, r.path+"/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	return r.h.parseResponse(resp, nil)
}

func fetchList[T any](ctx context.Context, h *HTTPClient, path string) ([]T, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Items []T `json:"items"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}
	return listResp.Items, nil
}
