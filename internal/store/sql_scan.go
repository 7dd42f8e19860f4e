package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/models"
)

// sqliteTimeLayouts are the text forms SQLite uses for CURRENT_TIMESTAMP and
// for go-sqlite3's own time encoding.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
}

// timeScanner accepts a time.Time from pgx or a textual timestamp from
// SQLite columns the driver could not type.
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case nil:
		*s.t = time.Time{}
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s timeScanner) parse(v string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", v)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var fullName sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&fullName,
		&user.IsActive,
		timeScanner{&user.CreatedAt},
	)
	if err != nil {
		return models.User{}, err
	}

	if fullName.Valid {
		user.FullName = &fullName.String
	}

	return user, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		timeScanner{&post.CreatedAt},
		timeScanner{&post.UpdatedAt},
	)
	if err != nil {
		return models.Post{}, err
	}

	return post, nil
}
