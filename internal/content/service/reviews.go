package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"studio/internal/content/repository"
	"studio/internal/content/validator"
	"studio/pkg/cache"
	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"
	"studio/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	reviewCachePrefix = "reviews"

	DefaultReviewLimit = 5
	MaxReviewLimit     = 50
)

type ReviewService interface {
	ListRecent(ctx context.Context, limit int) ([]model.Review, error)
	Submit(ctx context.Context, req model.ReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	base
	store repository.Store[model.Review]
	now   func() time.Time
}

func NewReviewService(store repository.Store[model.Review], c cache.Cache, v *validator.ContentValidator, cfg *config.Config) ReviewService {
	return &reviewService{
		base:  base{cfg: cfg, cache: c, validator: v, resource: "Review"},
		store: store,
		now:   time.Now,
	}
}

// ListRecent returns the newest approved reviews.
func (s *reviewService) ListRecent(ctx context.Context, limit int) ([]model.Review, error) {
	if limit <= 0 {
		limit = DefaultReviewLimit
	}
	limit = min(limit, MaxReviewLimit)

	reviews, err := cache.Remember(ctx, s.cache, reviewCachePrefix, strconv.Itoa(limit), s.cfg.CacheTTL, func(ctx context.Context) ([]model.Review, error) {
		return s.store.List(ctx, bson.M{"approved": true}, int64(limit))
	})
	if err != nil {
		s.cfg.Log.Error("Failed to list reviews", "error", err)
		return nil, apperrors.Persistence("Failed to retrieve reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) Submit(ctx context.Context, req model.ReviewRequest) (*model.Review, error) {
	review := &model.Review{
		CustomerName: sanitizer.NormalizeName(req.CustomerName),
		Comment:      strings.TrimSpace(req.Comment),
		Rating:       req.Rating,
		Approved:     s.cfg.ReviewsAutoApprove,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.validate(review, "Invalid review"); err != nil {
		return nil, err
	}

	id, err := s.store.Insert(ctx, review)
	if err != nil {
		s.cfg.Log.Error("Failed to save review", "error", err)
		return nil, apperrors.Persistence("Failed to save review", err)
	}
	review.ID = id

	s.cfg.Log.Info("Review submitted", "id", id, "rating", review.Rating, "approved", review.Approved)
	s.invalidate(ctx, reviewCachePrefix)
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapError(err, id, "Failed to delete review")
	}

	s.cfg.Log.Info("Review deleted", "id", id)
	s.invalidate(ctx, reviewCachePrefix)
	return nil
}
