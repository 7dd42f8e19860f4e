package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/handler"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock/servicemock"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-blog-api/models"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := servicemock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()
	health := servicemock.NewMockHealthService(ctrl)
	health.EXPECT().Status(gomock.Any()).
		Return(models.HealthResponse{Status: service.StatusHealthy}).AnyTimes()

	services := &service.Services{AppInfoService: appInfo, HealthService: health}
	handlers, err := handler.NewHandlers(services, nil, config.StructuredConfig{Server: cfg}, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := newServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	_, err = newServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen HTTP")
}

func TestServer_RunServesBothTransportsUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	}
	s, err := newServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	resp, err := http.Get("http://" + s.httpServer.listener.Addr().String() + "/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	check, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, check.GetStatus())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}

	_, err = http.Get("http://" + s.httpServer.listener.Addr().String() + "/version")
	assert.Error(t, err)
}

func TestServer_ShutdownIsIdempotent(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	s, err := newServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s.Shutdown()
	s.Shutdown()
}
