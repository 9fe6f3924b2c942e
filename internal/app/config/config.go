package config

import (
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:     utils.GetEnvString("POSTGRES_HOST", ""),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", ""),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "benefits_portal"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxConns: utils.GetEnvInt("POSTGRES_MAX_CONNS", 10),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	appEnv := utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	return &InternalConfig{
		App: App{
			Env:                         appEnv,
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 20),
			MaxBookingRequestsPerMinute: utils.GetEnvInt("APP_MAX_BOOKING_REQUESTS_PER_MINUTE", 30),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AllowedOrigins:              splitCSV(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
		},
		Scheduling: AppScheduling{
			BaseUrl:                utils.GetEnvString("SCHEDULING_BASE_URL", "https://acuityscheduling.com/api/v1"),
			UserID:                 utils.GetEnvString("SCHEDULING_USER_ID", ""),
			ApiKey:                 utils.GetEnvString("SCHEDULING_API_KEY", ""),
			Timeout:                utils.GetEnvDuration("SCHEDULING_TIMEOUT", 8*time.Second),
			RateLimit:              utils.GetEnvFloat("SCHEDULING_RATE_LIMIT_PER_SECOND", 10),
			RateBurst:              utils.GetEnvInt("SCHEDULING_RATE_BURST", 5),
			AllowSimulatedBookings: utils.GetEnvBool("SCHEDULING_ALLOW_SIMULATED_BOOKINGS", appEnv != constvars.AppEnvProduction),
		},
		MedicalTerms: AppMedicalTerms{
			BaseUrl:       utils.GetEnvString("MEDICAL_TERMS_BASE_URL", "https://clinicaltables.nlm.nih.gov/api"),
			Timeout:       utils.GetEnvDuration("MEDICAL_TERMS_TIMEOUT", 5*time.Second),
			CacheCapacity: utils.GetEnvInt("MEDICAL_TERMS_CACHE_CAPACITY", 20),
			CacheTTL:      utils.GetEnvDuration("MEDICAL_TERMS_CACHE_TTL", 5*time.Minute),
			MaxResults:    utils.GetEnvInt("MEDICAL_TERMS_MAX_RESULTS", constvars.MedicalTermsMaxResults),
		},
		Bookings: AppBookings{
			DraftTTL: utils.GetEnvDuration("BOOKING_DRAFT_TTL", 30*time.Minute),
		},
		Documents: AppDocuments{
			BucketName:                utils.GetEnvString("DOCUMENTS_BUCKET_NAME", "member-documents"),
			MaxUploadSizeInMegabyte:   utils.GetEnvInt64("DOCUMENTS_MAX_UPLOAD_SIZE_IN_MB", 10),
			PresignedURLExpiryInHours: utils.GetEnvInt("DOCUMENTS_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
		},
		RabbitMQ: AppRabbitMQ{
			SchedulingEventsQueue: utils.GetEnvString("RABBITMQ_SCHEDULING_EVENTS_QUEUE", "scheduling_events"),
		},
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
