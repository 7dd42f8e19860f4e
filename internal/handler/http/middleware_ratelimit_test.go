package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRateLimitedHandler(t *testing.T) (*Handler, serviceMocks, *mock.MockLimiter) {
	t.Helper()
	limiter := mock.NewMockLimiter(gomock.NewController(t))
	h, m := newTestHandler(t, limiter)
	return h, m, limiter
}

var loginPolicy = ratelimit.Policy{Name: routeLogin, Limit: 5, Window: time.Minute}

func TestRateLimit_AllowedSetsHeaders(t *testing.T) {
	h, m, limiter := newRateLimitedHandler(t)
	limiter.EXPECT().Allow(gomock.Any(), loginPolicy, "198.51.100.7").
		Return(ratelimit.Decision{Allowed: true, Limit: 5, Remaining: 4, ResetAfter: 42500 * time.Millisecond}, nil)
	m.auth.EXPECT().Login(gomock.Any(), aliceLogin).Return(alice, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, aliceLogin))
	req.RemoteAddr = "198.51.100.7:40000"
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "43", rec.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimit_ExceededStopsRequest(t *testing.T) {
	h, _, limiter := newRateLimitedHandler(t)
	limiter.EXPECT().Allow(gomock.Any(), loginPolicy, gomock.Any()).
		Return(ratelimit.Decision{Allowed: false, Limit: 5, Remaining: 0, ResetAfter: 17 * time.Second}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, aliceLogin)))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "17", rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, codeRateLimit, resp.ErrorCode)
	assert.Equal(t, "Rate limit exceeded: 5 per 1m0s", resp.Error)
}

func TestRateLimit_LimiterFailureFailsOpen(t *testing.T) {
	h, m, limiter := newRateLimitedHandler(t)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ratelimit.Decision{}, errors.New("redis: connection refused"))
	m.auth.EXPECT().RegisterUser(gomock.Any(), aliceRegister).Return(alice, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "jwt"}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, aliceRegister)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_PolicyPerRoute(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		policy ratelimit.Policy
	}{
		{"register", http.MethodPost, "/auth/register", ratelimit.Policy{Name: routeRegister, Limit: 3, Window: time.Minute}},
		{"create post", http.MethodPost, "/posts", ratelimit.Policy{Name: routeCreatePost, Limit: 10, Window: time.Minute}},
		{"delete post", http.MethodDelete, "/posts/1", ratelimit.Policy{Name: routeDeletePost, Limit: 20, Window: time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, limiter := newRateLimitedHandler(t)
			m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{}, nil).AnyTimes()
			m.auth.EXPECT().Identify(gomock.Any(), gomock.Any()).Return(alice, nil).AnyTimes()
			limiter.EXPECT().Allow(gomock.Any(), tt.policy, gomock.Any()).
				Return(ratelimit.Decision{Allowed: false, Limit: tt.policy.Limit, ResetAfter: time.Second}, nil)

			rec := serve(h, bearer(httptest.NewRequest(tt.method, tt.target, jsonBody(t, map[string]string{}))))

			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		})
	}
}

func TestRateLimit_ReadRoutesUnlimited(t *testing.T) {
	h, m, _ := newRateLimitedHandler(t)
	m.posts.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]models.Post{}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_AuthRunsFirst(t *testing.T) {
	h, _, _ := newRateLimitedHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/posts", jsonBody(t, models.PostInput{Title: "t", Content: "c"})))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimit_NoPolicyOrLimiter(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	h, _ := newTestHandler(t, nil)
	h.rateLimit(routeLogin)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.True(t, called)

	called = false
	h, _, _ = newRateLimitedHandler(t)
	h.rateLimit("unknown-route")(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.True(t, called)
}
