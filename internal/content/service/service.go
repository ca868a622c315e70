// Package service implements the gallery, frame and review content the
// public site shows.
package service

import (
	"context"
	"errors"
	"io"

	contenterrors "studio/internal/content/errors"
	"studio/internal/content/validator"
	"studio/pkg/cache"
	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"
)

// AssetStore is the part of the asset store the gallery needs.
type AssetStore interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader) (*model.Asset, error)
	Delete(ctx context.Context, key string) error
}

// Upload is a file received from the admin console.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type base struct {
	cfg       *config.Config
	cache     cache.Cache
	validator *validator.ContentValidator
	resource  string
}

func (b *base) validate(record any, message string) error {
	err := b.validator.Validate(record)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		b.cfg.Log.Warn(b.resource+" validation failed", "error", err)
		return apperrors.Validation(message, validationErrs.Details())
	}
	return apperrors.Internal("Failed to validate "+b.resource, err)
}

// invalidate drops every cached list of the collection after a write.
func (b *base) invalidate(ctx context.Context, prefix string) {
	if err := b.cache.DeletePrefix(context.WithoutCancel(ctx), prefix); err != nil {
		b.cfg.Log.Warn("Failed to invalidate cache", "prefix", prefix, "error", err)
	}
}

func (b *base) mapError(err error, id, message string) error {
	switch {
	case errors.Is(err, contenterrors.ErrNotFound), errors.Is(err, contenterrors.ErrInvalidID):
		return apperrors.NotFoundWithID(b.resource, id)
	default:
		b.cfg.Log.Error(message, "id", id, "error", err)
		return apperrors.Persistence(message, err)
	}
}
