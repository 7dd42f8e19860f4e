package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs the HTTP/REST implementation of [BlogAPI].
// address may omit the scheme, in which case http is assumed.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPBlogAdapter(address string, timeout time.Duration, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid blog api address: %w", err)
	}

	return &httpBlogAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [BlogAPI]. POST /auth/register.
func (h *httpBlogAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

// Login implements [BlogAPI]. POST /auth/login.
func (h *httpBlogAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpBlogAdapter) authenticate(ctx context.Context, path string, body any) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("%s: response carries no access token", path)
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("path", path).Msg("token stored")
	return token, nil
}

// Me implements [BlogAPI]. GET /auth/me.
func (h *httpBlogAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListPosts implements [BlogAPI]. GET /posts?skip&limit; a zero limit is
// left to the server default.
func (h *httpBlogAdapter) ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error) {
	posts := []models.Post{}

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("skip", strconv.Itoa(page.Skip)).
		SetResult(&posts)
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	resp, err := req.Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost implements [BlogAPI]. GET /posts/{id}.
func (h *httpBlogAdapter) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [BlogAPI]. POST /posts.
func (h *httpBlogAdapter) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	var post models.Post

	resp, err := h.authedRequest(ctx).
		SetBody(input).
		SetResult(&post).
		Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost implements [BlogAPI]. DELETE /posts/{id}.
func (h *httpBlogAdapter) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/posts/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [BlogAPI]. GET /health.
func (h *httpBlogAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var report models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		SetError(&report).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return report, mapHTTPError(resp)
}

func (h *httpBlogAdapter) authedRequest(ctx context.Context) *resty.Request {
	if token := h.Token(); token != "" {
		return h.client.WithBearer(token).SetContext(ctx)
	}
	return h.client.R().SetContext(ctx)
}
