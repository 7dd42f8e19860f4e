package service

import (
	"github.com/MKhiriev/go-blog-api/internal/cache"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices builds every service. Wrappers are applied innermost first:
// requests pass validation, then the cache, then reach the database.
func NewServices(storages *store.Storages, c cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(storages.UserRepository, storages.UnitOfWork, cfg.App, logger)
	postService := NewPostService(storages.PostRepository, storages.UnitOfWork, cfg.Posts, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		PostService:    NewPostValidationService().Wrap(NewPostCacheService(c, cfg.Storage.Cache, cfg.Posts).Wrap(postService)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.DB, c, cfg.App.Version, logger),
	}, nil
}
