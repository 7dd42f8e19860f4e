package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock/servicemock"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T, report models.HealthResponse) grpc_health_v1.HealthClient {
	t.Helper()

	ctrl := gomock.NewController(t)
	health := servicemock.NewMockHealthService(ctrl)
	health.EXPECT().Status(gomock.Any()).Return(report).AnyTimes()

	h := NewHandler(&service.Services{HealthService: health}, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return grpc_health_v1.NewHealthClient(conn)
}

func TestHealthCheck(t *testing.T) {
	degraded := models.HealthResponse{
		Status:   service.StatusDegraded,
		Services: map[string]string{"database": "up", "cache": "down"},
	}
	unhealthy := models.HealthResponse{
		Status:   service.StatusUnhealthy,
		Services: map[string]string{"database": "down", "cache": "up"},
	}

	tests := []struct {
		name    string
		report  models.HealthResponse
		service string
		want    grpc_health_v1.HealthCheckResponse_ServingStatus
	}{
		{name: "degraded server still serves", report: degraded, want: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "cache reported separately", report: degraded, service: "cache", want: grpc_health_v1.HealthCheckResponse_NOT_SERVING},
		{name: "database up", report: degraded, service: "database", want: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "database down stops serving", report: unhealthy, want: grpc_health_v1.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := startHealthServer(t, tt.report)

			resp, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: tt.service})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

func TestHealthCheck_UnknownService(t *testing.T) {
	client := startHealthServer(t, models.HealthResponse{Status: service.StatusHealthy, Services: map[string]string{}})

	_, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "queue"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHealthCheck_ReturnsRequestID(t *testing.T) {
	client := startHealthServer(t, models.HealthResponse{Status: service.StatusHealthy})

	var header metadata.MD
	_, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{}, grpc.Header(&header))
	require.NoError(t, err)

	ids := header.Get(requestIDKey)
	require.Len(t, ids, 1)
	assert.Len(t, ids[0], 36)
}
