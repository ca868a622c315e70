package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"customer_name",
			"customer_phone",
			"event_date",
			"package_id",
			"package_name",
			"package_price",
			"advance_amount",
			"status",
			"created_at",
			"updated_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"customer_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"customer_phone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20,
			},

			"event_date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"package_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"package_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"package_price": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"advance_amount": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Pending",
					"Paid",
					"Confirmed",
					"Completed",
					"Cancelled",
				},
			},

			"payment_id": bson.M{
				"bsonType": "string",
			},

			"paid_at": bson.M{
				"bsonType": "date",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
