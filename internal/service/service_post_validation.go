package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}

	return v.inner.CreatePost(ctx, input)
}

func (v *PostValidationService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return v.inner.GetPost(ctx, id)
}

func (v *PostValidationService) ListPosts(ctx context.Context, page models.Pagination) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return nil, fmt.Errorf("error during pagination validation: %w", err)
	}

	return v.inner.ListPosts(ctx, page)
}

func (v *PostValidationService) DeletePost(ctx context.Context, id int64) error {
	return v.inner.DeletePost(ctx, id)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
