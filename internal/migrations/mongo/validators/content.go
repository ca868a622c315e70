package validators

import (
	"studio/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

var GalleryImageValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"image_url", "storage_key", "category", "created_at"},
		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"image_url":   bson.M{"bsonType": "string", "minLength": 1},
			"storage_key": bson.M{"bsonType": "string", "minLength": 1},
			"category": bson.M{
				"bsonType": "string",
				"enum":     model.GalleryCategories,
			},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}

var FrameValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "price", "size", "image_url", "created_at"},
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "objectId"},
			"name":       bson.M{"bsonType": "string", "minLength": 1, "maxLength": 100},
			"price":      bson.M{"bsonType": []string{"int", "long"}, "minimum": 1},
			"size":       bson.M{"bsonType": "string", "minLength": 1, "maxLength": 50},
			"material":   bson.M{"bsonType": "string", "maxLength": 100},
			"image_url":  bson.M{"bsonType": "string", "minLength": 1},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}

var ReviewValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"customer_name", "comment", "rating", "approved", "created_at"},
		"properties": bson.M{
			"_id":           bson.M{"bsonType": "objectId"},
			"customer_name": bson.M{"bsonType": "string", "minLength": 1, "maxLength": 100},
			"comment":       bson.M{"bsonType": "string", "minLength": 1, "maxLength": 1000},
			"rating":        bson.M{"bsonType": []string{"int", "long"}, "minimum": 1, "maximum": 5},
			"approved":      bson.M{"bsonType": "bool"},
			"created_at":    bson.M{"bsonType": "date"},
		},
	},
}
