package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	// Identify returns the current record of the token's user.
	Identify(ctx context.Context, token models.Token) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports datastore and cache reachability.
type HealthService interface {
	// Probe pings every dependency and stores the result.
	Probe(ctx context.Context) models.HealthResponse
	// Status returns the last stored result, probing first if there is none.
	Status(ctx context.Context) models.HealthResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// caching or validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}
