package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubDB struct {
	err   error
	pings int
}

func (s *stubDB) PingContext(ctx context.Context) error {
	s.pings++
	return s.err
}

func TestHealthService_Probe(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		cacheErr   error
		wantStatus string
		wantDB     string
		wantCache  string
	}{
		{name: "all up", wantStatus: StatusHealthy, wantDB: "up", wantCache: "up"},
		{name: "cache down", cacheErr: errors.New("refused"), wantStatus: StatusDegraded, wantDB: "up", wantCache: "down"},
		{name: "database down", dbErr: errors.New("refused"), wantStatus: StatusUnhealthy, wantDB: "down", wantCache: "up"},
		{name: "both down", dbErr: errors.New("refused"), cacheErr: errors.New("refused"), wantStatus: StatusUnhealthy, wantDB: "down", wantCache: "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := mock.NewMockCache(ctrl)
			c.EXPECT().Ping(gomock.Any()).Return(tt.cacheErr)

			svc := NewHealthService(&stubDB{err: tt.dbErr}, c, "1.0.0", logger.Nop())
			report := svc.Probe(context.Background())

			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, "1.0.0", report.Version)
			assert.Equal(t, tt.wantDB, report.Services["database"])
			assert.Equal(t, tt.wantCache, report.Services["cache"])
		})
	}
}

func TestHealthService_StatusReusesLastProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockCache(ctrl)
	c.EXPECT().Ping(gomock.Any()).Return(nil).Times(1)
	db := &stubDB{}

	svc := NewHealthService(db, c, "1.0.0", logger.Nop())

	first := svc.Status(context.Background())
	second := svc.Status(context.Background())

	assert.Equal(t, StatusHealthy, first.Status)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, db.pings)
}
