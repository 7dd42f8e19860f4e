// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts a post and returns it with id and timestamps.
// Any constraint failure is reported as [ErrIntegrityViolation].
func (p *postRepository) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(p.builder, input)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(p.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		switch p.errorClassificator.Classify(err) {
		case UniqueViolation, IntegrityViolation:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("integrity violation")
			return models.Post{}, fmt.Errorf("%w: %w", ErrIntegrityViolation, err)
		default:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to insert post")
			return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return post, nil
}

// GetPost returns the post with the given id or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(p.builder, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(p.conn(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", id).Msg("failed to query post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// ListPosts returns one page of posts ordered by id. An empty page is not
// an error.
func (p *postRepository) ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(p.builder, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Int("skip", page.Skip).
			Int("limit", page.Limit).
			Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, page.Limit)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// DeletePost removes the post with the given id. Returns [ErrPostNotFound]
// if nothing was deleted.
func (p *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", id).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
