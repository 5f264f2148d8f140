package config

import (
	"medicapp-gateway/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medicapp"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:     utils.GetEnvInt("APP_MAX_REQUESTS_PER_SECOND", 10),
			LoginAttemptsPerMinute:   utils.GetEnvInt("APP_LOGIN_ATTEMPTS_PER_MINUTE", 10),
			SessionExpiryTimeInHours: utils.GetEnvInt("APP_SESSION_EXPIRY_TIME_IN_HOURS", 12),
			OpsAPIKeyHash:            utils.GetEnvString("APP_OPS_API_KEY_HASH", ""),
			AuditEnabled:             utils.GetEnvBool("APP_AUDIT_ENABLED", true),
			EventsEnabled:            utils.GetEnvBool("APP_EVENTS_ENABLED", true),
		},
		Upstream: Upstream{
			BaseURL:                 utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:8000"),
			RequestTimeoutInSeconds: utils.GetEnvInt("UPSTREAM_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RetryMax:                utils.GetEnvInt("UPSTREAM_RETRY_MAX", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
	}
}
