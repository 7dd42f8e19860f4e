package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

type postService struct {
	postRepository store.PostRepository
	uow            store.UnitOfWork
	maxLimit       int
	logger         *logger.Logger
}

// NewPostService returns a PostService whose every operation runs in its
// own unit of work.
func NewPostService(postRepository store.PostRepository, uow store.UnitOfWork, cfg config.Posts, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		uow:            uow,
		maxLimit:       cfg.MaxLimit,
		logger:         logger,
	}
}

func (p *postService) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	err := p.uow.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		post, err = p.postRepository.CreatePost(ctx, input)
		return err
	})
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("post creation ended with error")
		return models.Post{}, translatePostError(err)
	}

	log.Info().Int64("post_id", post.ID).Msg("post created")
	return post, nil
}

func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	err := p.uow.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		post, err = p.postRepository.GetPost(ctx, id)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("post_id", id).Msg("post lookup failed")
		return models.Post{}, translatePostError(err)
	}

	return post, nil
}

// ListPosts returns one page ordered by id. A limit above the configured
// maximum is lowered to it.
func (p *postService) ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error) {
	page = clampPage(page, p.maxLimit)

	var posts []models.Post
	err := p.uow.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		posts, err = p.postRepository.ListPosts(ctx, page)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("skip", page.Skip).Int("limit", page.Limit).Msg("post listing failed")
		return nil, translatePostError(err)
	}

	return posts, nil
}

// DeletePost reads the post and deletes it in one transaction. A missing
// post is reported before any mutation.
func (p *postService) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := p.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := p.postRepository.GetPost(ctx, id); err != nil {
			return err
		}
		return p.postRepository.DeletePost(ctx, id)
	})
	if err != nil {
		log.Err(err).Int64("post_id", id).Msg("post deletion ended with error")
		return translatePostError(err)
	}

	log.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}

func clampPage(page models.Pagination, maxLimit int) models.Pagination {
	if maxLimit > 0 && page.Limit > maxLimit {
		page.Limit = maxLimit
	}
	return page
}

func translatePostError(err error) error {
	switch {
	case errors.Is(err, store.ErrPostNotFound):
		return fmt.Errorf("%w: %w", ErrPostNotFound, err)
	case errors.Is(err, store.ErrIntegrityViolation):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
