package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/cache"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// PostCacheService serves ListPosts cache-aside. Entries expire after the
// configured TTL and are not invalidated by writes. A failing cache is
// logged and bypassed, never returned to the caller.
type PostCacheService struct {
	inner    PostService
	cache    cache.Cache
	ttl      time.Duration
	maxLimit int
}

func NewPostCacheService(c cache.Cache, storageCfg config.Cache, postsCfg config.Posts) PostServiceWrapper {
	return &PostCacheService{
		cache:    c,
		ttl:      storageCfg.ListTTL,
		maxLimit: postsCfg.MaxLimit,
	}
}

// postListKey is computed after clamping, so limit=150 and limit=100 share
// one entry.
func postListKey(page models.Pagination) string {
	return fmt.Sprintf("posts:%d:%d", page.Skip, page.Limit)
}

func (s *PostCacheService) ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	page = clampPage(page, s.maxLimit)
	key := postListKey(page)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var posts []models.Post
		if err = json.Unmarshal(cached, &posts); err == nil {
			log.Debug().Str("key", key).Msg("post list cache hit")
			return posts, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
	case errors.Is(err, cache.ErrCacheMiss):
		log.Debug().Str("key", key).Msg("post list cache miss")
	default:
		log.Warn().Err(err).Str("key", key).Msg("cache unavailable, reading from database")
	}

	posts, err := s.inner.ListPosts(ctx, page)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(posts)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post list is not cacheable")
		return posts, nil
	}
	if err = s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post list cache write failed")
	}

	return posts, nil
}

func (s *PostCacheService) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	return s.inner.CreatePost(ctx, input)
}

func (s *PostCacheService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return s.inner.GetPost(ctx, id)
}

func (s *PostCacheService) DeletePost(ctx context.Context, id int64) error {
	return s.inner.DeletePost(ctx, id)
}

func (s *PostCacheService) Wrap(wrapped PostService) PostService {
	s.inner = wrapped
	return s
}
