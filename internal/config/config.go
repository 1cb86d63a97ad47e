package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Slides  SlidesConfig  `mapstructure:"slides"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig selects and configures the presentation storage backend.
type StorageConfig struct {
	// Backend is the storage backend name: file, memory, or postgres.
	Backend string `mapstructure:"backend" validate:"required,oneof=file memory postgres"`

	// OutputDir is the directory used by the file backend.
	OutputDir string `mapstructure:"output_dir" validate:"required_if=Backend file"`

	// DatabaseURL is the connection string used by the postgres backend.
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
}

// LLMConfig contains all text-generation integration settings. An empty
// APIKey is valid: the application then serves every request from the
// fallback synthesizer.
type LLMConfig struct {
	// Provider selects the completion client: openai or gemini.
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=openai gemini"`

	// APIKey is the credential for the selected provider.
	APIKey string `mapstructure:"api_key"`

	// ModelName is the model identifier sent with each request.
	ModelName string `mapstructure:"model_name"`

	// Temperature is the sampling temperature sent with each request.
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// TimeoutSeconds bounds the single outbound call per request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0"`

	// Endpoint overrides the provider's default API URL. Used by the
	// openai provider and by tests.
	Endpoint string `mapstructure:"endpoint"`
}

// SlidesConfig contains the slide count bounds and default.
type SlidesConfig struct {
	MinSlides     int `mapstructure:"min_slides"     validate:"required,gte=1"`
	MaxSlides     int `mapstructure:"max_slides"     validate:"required,gtefield=MinSlides"`
	DefaultSlides int `mapstructure:"default_slides" validate:"required,gtefield=MinSlides,ltefield=MaxSlides"`
}
