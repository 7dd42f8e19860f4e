// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "blog.db")
	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.DB.Close() })

	return storages
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	name := "Alice"
	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Email:        "a@x.com",
		PasswordHash: "hash",
		FullName:     &name,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.NotNil(t, created.FullName)
	assert.Equal(t, "Alice", *created.FullName)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "other", IsActive: true})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.True(t, byEmail.IsActive)

	byID, err := s.UserRepository.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_PostLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		err := s.UnitOfWork.WithinTx(ctx, func(ctx context.Context) error {
			_, err := s.PostRepository.CreatePost(ctx, models.PostInput{
				Title:   fmt.Sprintf("T%d", i),
				Content: fmt.Sprintf("C%d", i),
			})
			return err
		})
		require.NoError(t, err)
	}

	page, err := s.PostRepository.ListPosts(ctx, models.Pagination{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "T2", page[0].Title)
	assert.Equal(t, "T3", page[1].Title)

	empty, err := s.PostRepository.ListPosts(ctx, models.Pagination{Skip: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)

	post, err := s.PostRepository.GetPost(ctx, page[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "C2", post.Content)

	require.NoError(t, s.PostRepository.DeletePost(ctx, post.ID))
	_, err = s.PostRepository.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, s.PostRepository.DeletePost(ctx, post.ID), ErrPostNotFound)
}

func TestSQLite_RollbackDiscardsWrites(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	err := s.UnitOfWork.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.PostRepository.CreatePost(ctx, models.PostInput{Title: "T", Content: "C"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	posts, err := s.PostRepository.ListPosts(ctx, models.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, posts)
}
