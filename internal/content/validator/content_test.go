package validator

import (
	"errors"
	"testing"
	"time"

	"studio/pkg/logger"
	"studio/pkg/model"
)

func newTestValidator() *ContentValidator {
	return NewContentValidator(logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	}))
}

func TestValidate_Review(t *testing.T) {
	tests := []struct {
		name      string
		review    model.Review
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid",
			review: model.Review{CustomerName: "Meera", Comment: "Lovely photos", Rating: 5},
		},
		{
			name:      "rating too high",
			review:    model.Review{CustomerName: "Meera", Comment: "Lovely", Rating: 6},
			wantField: "rating",
			wantMsg:   "rating must be at most 5",
		},
		{
			name:      "rating missing",
			review:    model.Review{CustomerName: "Meera", Comment: "Lovely"},
			wantField: "rating",
			wantMsg:   "rating must be at least 1",
		},
		{
			name:      "comment required",
			review:    model.Review{CustomerName: "Meera", Rating: 4},
			wantField: "comment",
			wantMsg:   "comment is required",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.review)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid review, got %v", err)
				}
				return
			}

			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if got := errs.Details()[tt.wantField]; got != tt.wantMsg {
				t.Errorf("details[%s] = %v, want %q", tt.wantField, got, tt.wantMsg)
			}
		})
	}
}

func TestValidate_GalleryCategory(t *testing.T) {
	v := newTestValidator()

	image := &model.GalleryImage{
		ImageURL:   "https://shrutifotography.in/assets/k1",
		StorageKey: "k1",
		Category:   "Weddings",
		CreatedAt:  time.Now(),
	}

	var errs ValidationErrors
	if !errors.As(v.Validate(image), &errs) {
		t.Fatal("expected unknown category to fail")
	}
	if _, ok := errs.Details()["category"]; !ok {
		t.Errorf("expected category error, got %v", errs.Details())
	}

	image.Category = "Wedding"
	if err := v.Validate(image); err != nil {
		t.Errorf("expected valid image, got %v", err)
	}
}

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"wedding", "Wedding", true},
		{" PRE-WEDDING ", "Pre-Wedding", true},
		{"All", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalCategory(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
