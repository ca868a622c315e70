package service

import (
	"context"
	"fmt"
	"time"

	"studio/internal/content/repository"
	"studio/internal/content/validator"
	"studio/pkg/cache"
	"studio/pkg/config"
	"studio/pkg/currency"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"
	"studio/pkg/sanitizer"
	"studio/pkg/whatsapp"
)

const frameCachePrefix = "frames"

type FrameService interface {
	List(ctx context.Context) ([]model.FrameListing, error)
	Create(ctx context.Context, req model.FrameRequest) (*model.Frame, error)
	Delete(ctx context.Context, id string) error
}

type frameService struct {
	base
	store repository.Store[model.Frame]
	now   func() time.Time
}

func NewFrameService(store repository.Store[model.Frame], c cache.Cache, v *validator.ContentValidator, cfg *config.Config) FrameService {
	return &frameService{
		base:  base{cfg: cfg, cache: c, validator: v, resource: "Frame"},
		store: store,
		now:   time.Now,
	}
}

func (s *frameService) List(ctx context.Context) ([]model.FrameListing, error) {
	frames, err := cache.Remember(ctx, s.cache, frameCachePrefix, "all", s.cfg.CacheTTL, func(ctx context.Context) ([]model.Frame, error) {
		return s.store.List(ctx, nil, 0)
	})
	if err != nil {
		s.cfg.Log.Error("Failed to list frames", "error", err)
		return nil, apperrors.Persistence("Failed to retrieve frames", err)
	}

	listings := make([]model.FrameListing, len(frames))
	for i, frame := range frames {
		listings[i] = model.FrameListing{Frame: frame, OrderLink: s.orderLink(frame)}
	}
	return listings, nil
}

// orderLink opens a WhatsApp chat with the studio, prefilled with the frame.
func (s *frameService) orderLink(frame model.Frame) string {
	text := fmt.Sprintf("Hi, I am interested in the %s Frame (Size: %s) for %s.",
		frame.Name, frame.Size, currency.FormatINR(frame.Price))
	return whatsapp.Link(sanitizer.WhatsAppDigits(s.cfg.StudioWhatsApp, s.cfg.PhoneRegion), text)
}

func (s *frameService) Create(ctx context.Context, req model.FrameRequest) (*model.Frame, error) {
	frame := &model.Frame{
		Name:      sanitizer.NormalizeName(req.Name),
		Price:     req.Price,
		Size:      sanitizer.TrimAndNormalize(req.Size),
		Material:  sanitizer.TrimAndNormalize(req.Material),
		ImageURL:  sanitizer.TrimAndNormalize(req.ImageURL),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.validate(frame, "Invalid frame"); err != nil {
		return nil, err
	}

	id, err := s.store.Insert(ctx, frame)
	if err != nil {
		s.cfg.Log.Error("Failed to save frame", "name", frame.Name, "error", err)
		return nil, apperrors.Persistence("Failed to save frame", err)
	}
	frame.ID = id

	s.cfg.Log.Info("Frame created", "id", id, "name", frame.Name)
	s.invalidate(ctx, frameCachePrefix)
	return frame, nil
}

func (s *frameService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapError(err, id, "Failed to delete frame")
	}

	s.cfg.Log.Info("Frame deleted", "id", id)
	s.invalidate(ctx, frameCachePrefix)
	return nil
}
