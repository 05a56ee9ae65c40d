package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream API URL, etc.)
// - default: Values common across all environments (timeouts, pricing policy, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Pricing PricingConfig
	Drafts  DraftConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type APIConfig struct {
	BaseURL                  string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout                  time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
	AvailabilityCheckTimeout time.Duration `envconfig:"AVAILABILITY_CHECK_TIMEOUT" default:"10s"`
	UnitCacheTTL             time.Duration `envconfig:"UNIT_CACHE_TTL" default:"1m"`
	UnitCacheSize            int           `envconfig:"UNIT_CACHE_SIZE" default:"256"`
}

// Rates are basis points: 1200 = 12%.
type PricingConfig struct {
	TaxRateBP          int64 `envconfig:"PRICING_TAX_RATE_BP" default:"1200"`
	HolidaySurchargeBP int64 `envconfig:"PRICING_HOLIDAY_SURCHARGE_BP" default:"0"`
}

type DraftConfig struct {
	TTL      time.Duration `envconfig:"DRAFT_TTL" default:"30m"`
	Capacity int           `envconfig:"DRAFT_CAPACITY" default:"1024"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Guayaquil"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Pricing.TaxRateBP < 0 || c.Pricing.HolidaySurchargeBP < 0 {
		return fmt.Errorf("pricing rates cannot be negative")
	}
	if c.Drafts.Capacity <= 0 {
		return fmt.Errorf("DRAFT_CAPACITY must be positive, got %d", c.Drafts.Capacity)
	}
	if c.API.UnitCacheSize <= 0 {
		return fmt.Errorf("UNIT_CACHE_SIZE must be positive, got %d", c.API.UnitCacheSize)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		API: APIConfig{
			BaseURL:                  "http://localhost:15000/api",
			Timeout:                  2 * time.Second,
			AvailabilityCheckTimeout: time.Second,
			UnitCacheTTL:             time.Minute,
			UnitCacheSize:            16,
		},
		Pricing: PricingConfig{
			TaxRateBP:          1200,
			HolidaySurchargeBP: 1000,
		},
		Drafts: DraftConfig{
			TTL:      time.Minute,
			Capacity: 16,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Guayaquil",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
	}
}
