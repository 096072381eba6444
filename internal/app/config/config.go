package config

import (
	"caseview-service/internal/pkg/utils"

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
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
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
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			CorsAllowCredentials:      utils.GetEnvBool("APP_CORS_ALLOW_CREDENTIALS", true),
		},
		CaseStore: CaseStore{
			BaseUrl:                  utils.GetEnvString("CASE_STORE_BASE_URL", "http://localhost:5555/digisos/api/v1"),
			DocumentBaseUrl:          utils.GetEnvString("CASE_STORE_DOCUMENT_BASE_URL", "http://localhost:5555/digisos/api/v1/soknader"),
			IntegrationID:            utils.GetEnvString("CASE_STORE_INTEGRATION_ID", ""),
			IntegrationPassword:      utils.GetEnvString("CASE_STORE_INTEGRATION_PASSWORD", ""),
			RequestTimeoutInSeconds:  utils.GetEnvInt("CASE_STORE_REQUEST_TIMEOUT_IN_SECONDS", 10),
			DocumentCacheTTLInMinute: utils.GetEnvInt("CASE_STORE_DOCUMENT_CACHE_TTL_IN_MINUTE", 5),
		},
		OfficeRegistry: OfficeRegistry{
			BaseUrl:                 utils.GetEnvString("OFFICE_REGISTRY_BASE_URL", "http://localhost:5556/norg2/api/v1"),
			RequestTimeoutInSeconds: utils.GetEnvInt("OFFICE_REGISTRY_REQUEST_TIMEOUT_IN_SECONDS", 5),
			CacheTTLInMinute:        utils.GetEnvInt("OFFICE_REGISTRY_CACHE_TTL_IN_MINUTE", 60),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
