package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog-api/models"
)

var (
	userColumns = []string{"id", "email", "password_hash", "full_name", "is_active", "created_at"}
	postColumns = []string{"id", "title", "content", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "full_name", "is_active").
		Values(user.Email, user.PasswordHash, user.FullName, user.IsActive).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCreatePostQuery(b sq.StatementBuilderType, input models.PostInput) (string, []any, error) {
	return b.Insert(models.Post{}.TableName()).
		Columns("title", "content").
		Values(input.Title, input.Content).
		Suffix(returning(postColumns)).
		ToSql()
}

func buildGetPostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListPostsQuery orders by id so that consecutive pages do not overlap.
func buildListPostsQuery(b sq.StatementBuilderType, page models.Pagination) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Skip)).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
