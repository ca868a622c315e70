package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"
	EnvMaxUploadSize  = "MAX_UPLOAD_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
	EnvCacheTTL      = "CACHE_TTL"

	EnvStudioName     = "STUDIO_NAME"
	EnvStudioAddress  = "STUDIO_ADDRESS"
	EnvStudioPhone    = "STUDIO_PHONE"
	EnvStudioWhatsApp = "STUDIO_WHATSAPP"
	EnvStudioTimezone = "STUDIO_TIMEZONE"
	EnvPhoneRegion    = "PHONE_REGION"
	EnvPublicBaseURL  = "PUBLIC_BASE_URL"

	EnvPaymentMode          = "PAYMENT_MODE"
	EnvPaymentWebhookSecret = "PAYMENT_WEBHOOK_SECRET"
	EnvPaymentGatewayURL    = "PAYMENT_GATEWAY_URL"
	EnvPaymentGatewayKey    = "PAYMENT_GATEWAY_KEY"

	EnvEventBroker = "EVENT_BROKER"
	EnvRabbitMQURL = "RABBITMQ_URL"

	EnvTwilioAccountSID   = "TWILIO_ACCOUNT_SID"
	EnvTwilioAuthToken    = "TWILIO_AUTH_TOKEN"
	EnvTwilioWhatsAppFrom = "TWILIO_WHATSAPP_FROM"
	EnvReminderCron       = "REMINDER_CRON"

	EnvReviewsAutoApprove   = "REVIEWS_AUTO_APPROVE"
	EnvRejectPastEventDates = "REJECT_PAST_EVENT_DATES"
)
