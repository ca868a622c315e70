package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"studio/pkg/client"
	"studio/pkg/locale"
	"studio/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int
	MaxUploadSize  int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	StudioName     string
	StudioAddress  []string
	StudioPhone    string
	StudioWhatsApp string
	StudioTimezone string
	PhoneRegion    string
	PublicBaseURL  string
	Location       *time.Location

	PaymentMode          string
	PaymentWebhookSecret string
	PaymentGatewayURL    string
	PaymentGatewayKey    string

	EventBroker string
	RabbitMQURL string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	ReminderCron       string

	ReviewsAutoApprove   bool
	RejectPastEventDates bool

	Log    *logger.Logger
	Client *client.Client
}

// Load reads the environment (and a .env file when present), validates it and
// exits on invalid configuration.
func Load(serviceName string) *Config {
	envFileErr := godotenv.Load()

	cfg := FromEnv(serviceName)
	if envFileErr == nil {
		cfg.Log.Debug("Loaded environment from .env file")
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv builds a Config from the process environment without validating it.
func FromEnv(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		MaxUploadSize:  getEnvNum(EnvMaxUploadSize, DefaultMaxUploadSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		RedisAddr:     getEnvStr(EnvRedisAddr, ""),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),
		CacheTTL:      getEnvDuration(EnvCacheTTL, DefaultCacheTTL),

		StudioName:     getEnvStr(EnvStudioName, DefaultStudioName),
		StudioAddress:  splitList(getEnvStr(EnvStudioAddress, DefaultStudioAddress)),
		StudioPhone:    getEnvStr(EnvStudioPhone, DefaultStudioPhone),
		StudioWhatsApp: getEnvStr(EnvStudioWhatsApp, DefaultStudioWhatsApp),
		StudioTimezone: getEnvStr(EnvStudioTimezone, DefaultStudioTimezone),
		PublicBaseURL:  strings.TrimRight(getEnvStr(EnvPublicBaseURL, DefaultPublicBaseURL), "/"),

		PaymentMode:          strings.ToLower(getEnvStr(EnvPaymentMode, DefaultPaymentMode)),
		PaymentWebhookSecret: getEnvStr(EnvPaymentWebhookSecret, ""),
		PaymentGatewayURL:    strings.TrimRight(getEnvStr(EnvPaymentGatewayURL, ""), "/"),
		PaymentGatewayKey:    getEnvStr(EnvPaymentGatewayKey, ""),

		EventBroker: strings.ToLower(getEnvStr(EnvEventBroker, DefaultEventBroker)),
		RabbitMQURL: getEnvStr(EnvRabbitMQURL, ""),

		TwilioAccountSID:   getEnvStr(EnvTwilioAccountSID, ""),
		TwilioAuthToken:    getEnvStr(EnvTwilioAuthToken, ""),
		TwilioWhatsAppFrom: getEnvStr(EnvTwilioWhatsAppFrom, ""),
		ReminderCron:       getEnvStr(EnvReminderCron, DefaultReminderCron),

		ReviewsAutoApprove:   getEnvBool(EnvReviewsAutoApprove, DefaultReviewsAutoApprove),
		RejectPastEventDates: getEnvBool(EnvRejectPastEventDates, DefaultRejectPastEventDates),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if loc, err := time.LoadLocation(cfg.StudioTimezone); err == nil {
		cfg.Location = loc
	}
	cfg.PhoneRegion = strings.ToUpper(getEnvStr(EnvPhoneRegion, locale.DetectRegion(cfg.StudioTimezone)))
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects only when REDIS_ADDR is set; callers fall back to
// in-memory implementations otherwise.
func (cfg *Config) SetRedis() {
	if cfg.RedisAddr == "" {
		cfg.Log.Info("Redis not configured, using in-memory stores")
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.MongoConnTimeout)
}

func (cfg *Config) TrustOnSubmit() bool {
	return cfg.PaymentMode == PaymentModeTrustOnSubmit
}

func (cfg *Config) TwilioEnabled() bool {
	return cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioWhatsAppFrom != ""
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}
	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	positive := []struct {
		name string
		d    time.Duration
	}{
		{"MongoConnTimeout", cfg.MongoConnTimeout},
		{"RateLimitWindow", cfg.RateLimitWindow},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"CacheTTL", cfg.CacheTTL},
	}
	for _, p := range positive {
		if p.d <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", p.name, p.d))
		}
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.MaxUploadSize < cfg.MaxRequestSize {
		errors = append(errors, fmt.Sprintf("MaxUploadSize (%d) must be >= MaxRequestSize (%d)", cfg.MaxUploadSize, cfg.MaxRequestSize))
	}
	if cfg.RedisDB < 0 {
		errors = append(errors, fmt.Sprintf("RedisDB cannot be negative, got: %d", cfg.RedisDB))
	}

	if strings.TrimSpace(cfg.StudioName) == "" {
		errors = append(errors, "StudioName cannot be empty")
	}
	if cfg.Location == nil {
		errors = append(errors, fmt.Sprintf("StudioTimezone must be a valid IANA zone, got: %s", cfg.StudioTimezone))
	}
	if len(cfg.PhoneRegion) != 2 {
		errors = append(errors, fmt.Sprintf("PhoneRegion must be a two-letter region code, got: %s", cfg.PhoneRegion))
	}
	if !digitsOnly(cfg.StudioWhatsApp) {
		errors = append(errors, fmt.Sprintf("StudioWhatsApp must be digits only (country code included), got: %s", cfg.StudioWhatsApp))
	}
	if u, err := url.Parse(cfg.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("PublicBaseURL must be an absolute URL, got: %s", cfg.PublicBaseURL))
	}

	switch cfg.PaymentMode {
	case PaymentModeTrustOnSubmit:
	case PaymentModeWebhook:
		if cfg.PaymentWebhookSecret == "" {
			errors = append(errors, "PaymentWebhookSecret is required when PaymentMode is webhook")
		}
	default:
		errors = append(errors, fmt.Sprintf("PaymentMode must be %q or %q, got: %s", PaymentModeTrustOnSubmit, PaymentModeWebhook, cfg.PaymentMode))
	}
	if cfg.PaymentGatewayURL != "" {
		if u, err := url.Parse(cfg.PaymentGatewayURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("PaymentGatewayURL must be an absolute URL, got: %s", cfg.PaymentGatewayURL))
		}
	}

	switch cfg.EventBroker {
	case BrokerNone, BrokerKafka:
	case BrokerRabbitMQ:
		if cfg.RabbitMQURL == "" {
			errors = append(errors, "RabbitMQURL is required when EventBroker is rabbitmq")
		}
	default:
		errors = append(errors, fmt.Sprintf("EventBroker must be one of none, kafka, rabbitmq, got: %s", cfg.EventBroker))
	}

	if _, err := cron.ParseStandard(cfg.ReminderCron); err != nil {
		errors = append(errors, fmt.Sprintf("ReminderCron must be a standard cron expression, got: %s", cfg.ReminderCron))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"max_upload_size", cfg.MaxUploadSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"redis_enabled", cfg.RedisAddr != "",
		"cache_ttl", cfg.CacheTTL,
		"studio_name", cfg.StudioName,
		"studio_timezone", cfg.StudioTimezone,
		"phone_region", cfg.PhoneRegion,
		"public_base_url", cfg.PublicBaseURL,
		"payment_mode", cfg.PaymentMode,
		"payment_webhook_secret_set", cfg.PaymentWebhookSecret != "",
		"payment_gateway_set", cfg.PaymentGatewayURL != "",
		"event_broker", cfg.EventBroker,
		"twilio_enabled", cfg.TwilioEnabled(),
		"reminder_cron", cfg.ReminderCron,
		"reviews_auto_approve", cfg.ReviewsAutoApprove,
		"reject_past_event_dates", cfg.RejectPastEventDates,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// splitList splits a semicolon separated value, dropping blank entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}
