// Package assets keeps uploaded images in MongoDB GridFS. Every asset is
// addressed by the key generated at upload.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"studio/pkg/config"
	"studio/pkg/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BucketName = "assets"

var (
	ErrAssetNotFound   = errors.New("asset not found")
	ErrUnsupportedType = errors.New("unsupported asset content type")
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func Allowed(contentType string) bool {
	return allowedContentTypes[contentType]
}

// Sniff detects the content type from the leading bytes of file and rewinds
// it. The client supplied header is never trusted.
func Sniff(file io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}
	return mtype.String(), nil
}

// Object is an open asset. Callers must Close it.
type Object struct {
	io.ReadCloser
	Key         string
	ContentType string
	Size        int64
	UploadedAt  time.Time
}

type Store interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader) (*model.Asset, error)
	Open(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}

type gridFSStore struct {
	cfg     *config.Config
	db      *mongo.Database
	baseURL string
	newKey  func() string
}

func NewGridFSStore(cfg *config.Config) Store {
	return &gridFSStore{
		cfg:     cfg,
		db:      cfg.Client.Mongo.Database(cfg.MongoDatabaseName),
		baseURL: cfg.PublicBaseURL,
		newKey:  uuid.NewString,
	}
}

// bucket returns a fresh bucket bounded by ctx. Buckets carry their own
// deadlines, so they are not shared between requests.
func (s *gridFSStore) bucket(ctx context.Context, fallback time.Duration) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(BucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset bucket: %w", err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(fallback)
	}
	if err := bucket.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	if err := bucket.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	return bucket, nil
}

func (s *gridFSStore) Put(ctx context.Context, filename, contentType string, r io.Reader) (*model.Asset, error) {
	if !Allowed(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	bucket, err := s.bucket(ctx, s.cfg.WriteTimeout)
	if err != nil {
		return nil, err
	}

	key := s.newKey()
	counter := &countingReader{r: r}
	opts := options.GridFSUpload().SetMetadata(bson.D{
		{Key: "content_type", Value: contentType},
		{Key: "original_name", Value: filename},
	})
	if err := bucket.UploadFromStreamWithID(key, filename, counter, opts); err != nil {
		return nil, fmt.Errorf("failed to store asset: %w", err)
	}

	return &model.Asset{
		Key:         key,
		URL:         s.baseURL + "/assets/" + key,
		Filename:    filename,
		ContentType: contentType,
		Size:        counter.n,
	}, nil
}

func (s *gridFSStore) Open(ctx context.Context, key string) (*Object, error) {
	bucket, err := s.bucket(ctx, s.cfg.ReadTimeout)
	if err != nil {
		return nil, err
	}

	stream, err := bucket.OpenDownloadStream(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}

	file := stream.GetFile()
	contentType := "application/octet-stream"
	if value, err := file.Metadata.LookupErr("content_type"); err == nil {
		if ct, ok := value.StringValueOK(); ok {
			contentType = ct
		}
	}

	return &Object{
		ReadCloser:  stream,
		Key:         key,
		ContentType: contentType,
		Size:        file.Length,
		UploadedAt:  file.UploadDate,
	}, nil
}

func (s *gridFSStore) Delete(ctx context.Context, key string) error {
	bucket, err := s.bucket(ctx, s.cfg.WriteTimeout)
	if err != nil {
		return err
	}

	if err := bucket.DeleteContext(ctx, key); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
