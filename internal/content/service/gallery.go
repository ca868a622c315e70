package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio/internal/assets"
	"studio/internal/content/repository"
	"studio/internal/content/validator"
	"studio/pkg/cache"
	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

const galleryCachePrefix = "gallery"

type GalleryService interface {
	List(ctx context.Context, category string) ([]model.GalleryImage, error)
	Categories() []string
	Upload(ctx context.Context, file Upload, category string) (*model.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryService struct {
	base
	store  repository.Store[model.GalleryImage]
	assets AssetStore
	now    func() time.Time
}

func NewGalleryService(
	store repository.Store[model.GalleryImage],
	assetStore AssetStore,
	c cache.Cache,
	v *validator.ContentValidator,
	cfg *config.Config,
) GalleryService {
	return &galleryService{
		base:   base{cfg: cfg, cache: c, validator: v, resource: "Gallery image"},
		store:  store,
		assets: assetStore,
		now:    time.Now,
	}
}

// List returns images newest first. An empty category or "All" lists
// everything.
func (s *galleryService) List(ctx context.Context, category string) ([]model.GalleryImage, error) {
	category = strings.TrimSpace(category)
	filter := bson.M{}
	key := strings.ToLower(model.GalleryAll)

	if category != "" && !strings.EqualFold(category, model.GalleryAll) {
		canonical, ok := validator.CanonicalCategory(category)
		if !ok {
			return nil, apperrors.InvalidInput("Unknown gallery category: " + category)
		}
		filter["category"] = canonical
		key = strings.ToLower(canonical)
	}

	images, err := cache.Remember(ctx, s.cache, galleryCachePrefix, key, s.cfg.CacheTTL, func(ctx context.Context) ([]model.GalleryImage, error) {
		return s.store.List(ctx, filter, 0)
	})
	if err != nil {
		s.cfg.Log.Error("Failed to list gallery images", "category", category, "error", err)
		return nil, apperrors.Persistence("Failed to retrieve gallery", err)
	}
	return images, nil
}

func (s *galleryService) Categories() []string {
	return append([]string{model.GalleryAll}, model.GalleryCategories...)
}

// Upload stores the file first and then the record pointing at it. If the
// record cannot be saved the stored file is removed again.
func (s *galleryService) Upload(ctx context.Context, file Upload, category string) (*model.GalleryImage, error) {
	canonical, ok := validator.CanonicalCategory(category)
	if !ok {
		return nil, apperrors.Validation("Invalid gallery image", map[string]any{
			"category": "category must be one of: " + strings.Join(model.GalleryCategories, ", "),
		})
	}

	asset, err := s.assets.Put(ctx, file.Filename, file.ContentType, file.Body)
	if err != nil {
		if errors.Is(err, assets.ErrUnsupportedType) {
			return nil, apperrors.Validation("Invalid gallery image", map[string]any{
				"file": "file must be a JPEG, PNG or WebP image",
			})
		}
		s.cfg.Log.Error("Failed to store gallery asset", "filename", file.Filename, "error", err)
		return nil, apperrors.Persistence("Failed to store image", err)
	}

	image := &model.GalleryImage{
		ImageURL:   asset.URL,
		StorageKey: asset.Key,
		Category:   canonical,
		CreatedAt:  s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.validate(image, "Invalid gallery image"); err != nil {
		s.discardAsset(ctx, asset.Key)
		return nil, err
	}

	id, err := s.store.Insert(ctx, image)
	if err != nil {
		s.discardAsset(ctx, asset.Key)
		s.cfg.Log.Error("Failed to save gallery image", "storage_key", asset.Key, "error", err)
		return nil, apperrors.Persistence("Failed to save gallery image", err)
	}
	image.ID = id

	s.cfg.Log.Info("Gallery image uploaded", "id", id, "category", canonical, "storage_key", asset.Key, "size", asset.Size)
	s.invalidate(ctx, galleryCachePrefix)
	return image, nil
}

// Delete removes the record, then the stored file by its key. A file that
// cannot be removed is logged and left behind.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	image, err := s.store.FindByID(ctx, id)
	if err != nil {
		return s.mapError(err, id, "Failed to retrieve gallery image")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapError(err, id, "Failed to delete gallery image")
	}
	s.invalidate(ctx, galleryCachePrefix)

	if image.StorageKey != "" {
		if err := s.assets.Delete(context.WithoutCancel(ctx), image.StorageKey); err != nil && !errors.Is(err, assets.ErrAssetNotFound) {
			s.cfg.Log.Warn("Failed to delete gallery asset", "id", id, "storage_key", image.StorageKey, "error", err)
		}
	}

	s.cfg.Log.Info("Gallery image deleted", "id", id)
	return nil
}

func (s *galleryService) discardAsset(ctx context.Context, key string) {
	if err := s.assets.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.cfg.Log.Warn("Failed to discard orphaned asset", "storage_key", key, "error", err)
	}
}
