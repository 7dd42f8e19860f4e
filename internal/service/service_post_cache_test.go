package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/cache"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingPostService records how often each call reaches the database layer.
type countingPostService struct {
	listCalls []models.Pagination
	posts     []models.Post
	listErr   error

	createCalls, getCalls, deleteCalls int
}

func (c *countingPostService) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	c.createCalls++
	return models.Post{ID: 1, Title: input.Title, Content: input.Content}, nil
}

func (c *countingPostService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	c.getCalls++
	return models.Post{ID: id}, nil
}

func (c *countingPostService) ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error) {
	c.listCalls = append(c.listCalls, page)
	return c.posts, c.listErr
}

func (c *countingPostService) DeletePost(ctx context.Context, id int64) error {
	c.deleteCalls++
	return nil
}

var testCacheConfig = config.Cache{ListTTL: 60 * time.Second}

func newTestCachedPosts(t *testing.T) (PostService, *countingPostService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingPostService{posts: []models.Post{{ID: 1, Title: "T", Content: "C"}}}
	svc := NewPostCacheService(cache.NewRedisCache(client, ""), testCacheConfig, config.Posts{MaxLimit: 100}).Wrap(inner)

	return svc, inner, mr
}

func TestPostCacheService_SecondCallHitsCache(t *testing.T) {
	svc, inner, mr := newTestCachedPosts(t)
	ctx := context.Background()
	page := models.Pagination{Skip: 0, Limit: 10}

	first, err := svc.ListPosts(ctx, page)
	require.NoError(t, err)
	second, err := svc.ListPosts(ctx, page)
	require.NoError(t, err)

	assert.Len(t, inner.listCalls, 1, "second call must not reach the database")
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists("posts:0:10"))
	assert.Equal(t, 60*time.Second, mr.TTL("posts:0:10"))

	mr.FastForward(60 * time.Second)

	_, err = svc.ListPosts(ctx, page)
	require.NoError(t, err)
	assert.Len(t, inner.listCalls, 2, "expired entry is repopulated")
	assert.True(t, mr.Exists("posts:0:10"))
}

func TestPostCacheService_KeyUsesClampedLimit(t *testing.T) {
	svc, inner, mr := newTestCachedPosts(t)
	ctx := context.Background()

	_, err := svc.ListPosts(ctx, models.Pagination{Skip: 0, Limit: 150})
	require.NoError(t, err)
	_, err = svc.ListPosts(ctx, models.Pagination{Skip: 0, Limit: 100})
	require.NoError(t, err)

	require.Len(t, inner.listCalls, 1)
	assert.Equal(t, 100, inner.listCalls[0].Limit)
	assert.True(t, mr.Exists("posts:0:100"))
	assert.False(t, mr.Exists("posts:0:150"))
}

func TestPostCacheService_DistinctPagesAreCachedSeparately(t *testing.T) {
	svc, inner, _ := newTestCachedPosts(t)
	ctx := context.Background()

	_, err := svc.ListPosts(ctx, models.Pagination{Skip: 0, Limit: 10})
	require.NoError(t, err)
	_, err = svc.ListPosts(ctx, models.Pagination{Skip: 10, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, inner.listCalls, 2)
}

func TestPostCacheService_CacheDownFallsBackToDatabase(t *testing.T) {
	svc, inner, mr := newTestCachedPosts(t)
	mr.Close()

	posts, err := svc.ListPosts(context.Background(), models.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, inner.posts, posts)
	assert.Len(t, inner.listCalls, 1)
}

func TestPostCacheService_UndecodableEntryIsReplaced(t *testing.T) {
	svc, inner, mr := newTestCachedPosts(t)
	require.NoError(t, mr.Set("posts:0:10", "{not json"))

	posts, err := svc.ListPosts(context.Background(), models.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, inner.posts, posts)

	stored, err := mr.Get("posts:0:10")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"T","content":"C"}]`, stored)
}

func TestPostCacheService_DatabaseErrorIsNotCached(t *testing.T) {
	svc, inner, mr := newTestCachedPosts(t)
	inner.listErr = ErrStorage

	_, err := svc.ListPosts(context.Background(), models.Pagination{Limit: 10})
	require.ErrorIs(t, err, ErrStorage)
	assert.False(t, mr.Exists("posts:0:10"))
}

func TestPostCacheService_WriteFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockCache(ctrl)
	inner := &countingPostService{posts: []models.Post{}}
	svc := NewPostCacheService(c, testCacheConfig, config.Posts{MaxLimit: 100}).Wrap(inner)

	c.EXPECT().Get(gomock.Any(), "posts:0:10").Return(nil, cache.ErrCacheMiss)
	c.EXPECT().Set(gomock.Any(), "posts:0:10", []byte("[]"), 60*time.Second).Return(errors.New("READONLY"))

	posts, err := svc.ListPosts(context.Background(), models.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostCacheService_OtherCallsPassThrough(t *testing.T) {
	svc, inner, mr := newTestCachedPosts(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, models.PostInput{Title: "T", Content: "C"})
	require.NoError(t, err)
	_, err = svc.GetPost(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.DeletePost(ctx, 1))

	assert.Equal(t, 1, inner.createCalls)
	assert.Equal(t, 1, inner.getCalls)
	assert.Equal(t, 1, inner.deleteCalls)
	assert.Empty(t, mr.Keys())
}
