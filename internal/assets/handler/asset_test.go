package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio/internal/assets"
	"studio/pkg/logger"
	"studio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockStore struct {
	openFunc func(ctx context.Context, key string) (*assets.Object, error)
}

func (m *mockStore) Put(ctx context.Context, filename, contentType string, r io.Reader) (*model.Asset, error) {
	return nil, nil
}

func (m *mockStore) Open(ctx context.Context, key string) (*assets.Object, error) {
	return m.openFunc(ctx, key)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return nil
}

func serve(store assets.Store, path string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewAssetHandler(store, logger.Discard()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServe_StreamsStoredBytes(t *testing.T) {
	store := &mockStore{
		openFunc: func(ctx context.Context, key string) (*assets.Object, error) {
			if key != "k1" {
				t.Errorf("key = %q", key)
			}
			return &assets.Object{
				ReadCloser:  io.NopCloser(strings.NewReader("png-bytes")),
				Key:         key,
				ContentType: "image/png",
				Size:        9,
			}, nil
		},
	}

	rec := serve(store, "/assets/k1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Body.String() != "png-bytes" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServe_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown key", assets.ErrAssetNotFound, http.StatusNotFound},
		{"store down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{
				openFunc: func(ctx context.Context, key string) (*assets.Object, error) {
					return nil, tt.err
				},
			}
			if rec := serve(store, "/assets/missing"); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
