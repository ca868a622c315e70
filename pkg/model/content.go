package model

import "time"

var GalleryCategories = []string{"Wedding", "Pre-Wedding", "Portraits", "Events", "Cinematic", "Fashion"}

// GalleryAll is the pseudo-category that disables filtering.
const GalleryAll = "All"

type GalleryImage struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	ImageURL   string    `json:"image_url" bson:"image_url" validate:"required,url"`
	StorageKey string    `json:"storage_key" bson:"storage_key" validate:"required"`
	Category   string    `json:"category" bson:"category" validate:"required,gallery_category"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

type Frame struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required,max=100"`
	Price     int64     `json:"price" bson:"price" validate:"gt=0"`
	Size      string    `json:"size" bson:"size" validate:"required,max=50"`
	Material  string    `json:"material,omitempty" bson:"material,omitempty" validate:"max=100"`
	ImageURL  string    `json:"image_url" bson:"image_url" validate:"required,url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// FrameListing is a Frame as shown publicly, with its order deep link.
type FrameListing struct {
	Frame
	OrderLink string `json:"order_link"`
}

type Review struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerName string    `json:"customer_name" bson:"customer_name" validate:"required,max=100"`
	Comment      string    `json:"comment" bson:"comment" validate:"required,max=1000"`
	Rating       int       `json:"rating" bson:"rating" validate:"min=1,max=5"`
	Approved     bool      `json:"approved" bson:"approved"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type FrameRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Size     string `json:"size"`
	Material string `json:"material,omitempty"`
	ImageURL string `json:"image_url"`
}

type ReviewRequest struct {
	CustomerName string `json:"customer_name"`
	Comment      string `json:"comment"`
	Rating       int    `json:"rating"`
}
