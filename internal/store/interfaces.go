package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// PostRepository persists and looks up posts.
type PostRepository interface {
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// UnitOfWork runs fn inside one database transaction. Repository calls made
// with the ctx passed to fn join that transaction. The transaction is
// committed when fn returns nil and rolled back on error or panic.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// querier is implemented by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
