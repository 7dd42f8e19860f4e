package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock/servicemock"
	"github.com/MKhiriev/go-blog-api/internal/ratelimit"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type serviceMocks struct {
	auth    *servicemock.MockAuthService
	posts   *servicemock.MockPostService
	appInfo *servicemock.MockAppInfoService
	health  *servicemock.MockHealthService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{
			HTTPAddress:          ":8080",
			SlowRequestThreshold: time.Second,
		},
		RateLimit: config.RateLimit{
			Register:   config.Rate{Requests: 3, Window: time.Minute},
			Login:      config.Rate{Requests: 5, Window: time.Minute},
			CreatePost: config.Rate{Requests: 10, Window: time.Minute},
			DeletePost: config.Rate{Requests: 20, Window: time.Minute},
		},
	}
}

// newTestHandler builds a Handler over gomock services. limiter may be nil.
func newTestHandler(t *testing.T, limiter ratelimit.Limiter) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:    servicemock.NewMockAuthService(ctrl),
		posts:   servicemock.NewMockPostService(ctrl),
		appInfo: servicemock.NewMockAppInfoService(ctrl),
		health:  servicemock.NewMockHealthService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		PostService:    m.posts,
		AppInfoService: m.appInfo,
		HealthService:  m.health,
	}

	return NewHandler(services, limiter, testConfig(), logger.Nop()), m
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// serve runs req through the full router and pipeline.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, nil, testConfig(), log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Nil(t, h.limiter)
	assert.Equal(t, time.Second, h.slowRequestThreshold)
}

func TestNewHandler_Policies(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, testConfig(), logger.Nop())

	assert.Equal(t, map[string]ratelimit.Policy{
		routeRegister:   {Name: routeRegister, Limit: 3, Window: time.Minute},
		routeLogin:      {Name: routeLogin, Limit: 5, Window: time.Minute},
		routeCreatePost: {Name: routeCreatePost, Limit: 10, Window: time.Minute},
		routeDeletePost: {Name: routeDeletePost, Limit: 20, Window: time.Minute},
	}, h.policies)
}

func TestNewHandler_ZeroRateDisablesPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Login = config.Rate{}

	h := NewHandler(&service.Services{}, nil, cfg, logger.Nop())

	assert.NotContains(t, h.policies, routeLogin)
	assert.Contains(t, h.policies, routeRegister)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, testConfig(), logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, testConfig(), logger.Nop())

	assert.NotSame(t, h1, h2)
}
