// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-blog-api/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Check implements grpc.health.v1.Health/Check.
//
// The empty service name reports the whole server: SERVING unless the
// database is down. "database" and "cache" report a single dependency.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	report := h.services.HealthService.Status(ctx)

	if req.GetService() == "" {
		if report.Status == service.StatusUnhealthy {
			return servingStatus(grpc_health_v1.HealthCheckResponse_NOT_SERVING), nil
		}
		return servingStatus(grpc_health_v1.HealthCheckResponse_SERVING), nil
	}

	state, ok := report.Services[req.GetService()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}
	if state != "up" {
		return servingStatus(grpc_health_v1.HealthCheckResponse_NOT_SERVING), nil
	}
	return servingStatus(grpc_health_v1.HealthCheckResponse_SERVING), nil
}

func servingStatus(s grpc_health_v1.HealthCheckResponse_ServingStatus) *grpc_health_v1.HealthCheckResponse {
	return &grpc_health_v1.HealthCheckResponse{Status: s}
}
