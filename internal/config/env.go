// Package config defines environment variable keys for configuration.
package config

const (
	// Bot identity
	EnvBotName  = "PUDIM_BOT_NAME"
	EnvUserName = "PUDIM_USER_NAME"

	// Server (service mode)
	EnvPort            = "PUDIM_PORT"
	EnvLogLevel        = "PUDIM_LOG_LEVEL"
	EnvShutdownTimeout = "PUDIM_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir = "PUDIM_DATA_DIR"

	// Conversation
	EnvConversationDuration = "PUDIM_CONVERSATION_DURATION"
	EnvPollInterval         = "PUDIM_POLL_INTERVAL"
	EnvPausedListenTimeout  = "PUDIM_PAUSED_LISTEN_TIMEOUT"

	// Weather
	EnvOpenWeatherAPIKey = "PUDIM_OPENWEATHER_API_KEY"
	EnvCityName          = "PUDIM_CITY_NAME"
	EnvCountryCode       = "PUDIM_COUNTRY_CODE"
	EnvWeatherTimeout    = "PUDIM_WEATHER_TIMEOUT"

	// Better Stack Feature
	EnvBetterStackToken    = "PUDIM_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "PUDIM_BETTERSTACK_ENDPOINT"

	// Sentry Feature
	EnvSentryDSN         = "PUDIM_SENTRY_DSN"
	EnvSentryEnvironment = "PUDIM_SENTRY_ENVIRONMENT"
)
