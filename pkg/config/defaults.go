package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "studio"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024  // 1MB
	DefaultMaxUploadSize  = 10 * 1024 * 1024 // 10MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultRedisDB  = 0
	DefaultCacheTTL = 5 * time.Minute

	DefaultStudioName     = "Shruti Fotography"
	DefaultStudioAddress  = "Main Road;Karwar, Karnataka"
	DefaultStudioPhone    = "+91 98765 43210"
	DefaultStudioWhatsApp = "919876543210"
	DefaultStudioTimezone = "Asia/Kolkata"
	DefaultPublicBaseURL  = "http://localhost:8080"

	DefaultEventBroker  = BrokerNone
	DefaultReminderCron = "0 9 * * *"

	DefaultReviewsAutoApprove   = true
	DefaultRejectPastEventDates = false
)

const (
	PaymentModeTrustOnSubmit = "trust_on_submit"
	PaymentModeWebhook       = "webhook"
	DefaultPaymentMode       = PaymentModeTrustOnSubmit
)

const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)
