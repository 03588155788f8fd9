package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the admin service reads from the environment.
type Config struct {
	Port            string `mapstructure:"PORT"`
	DBURL           string `mapstructure:"DB_URL"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	RuangobatAPIURL string `mapstructure:"RUANGOBAT_API_URL"`
	CORSOrigin      string `mapstructure:"CORS_ORIGIN"`
	RollbarToken    string `mapstructure:"ROLLBAR_TOKEN"`
	AppEnv          string `mapstructure:"APP_ENV"`
	DefaultTimezone string `mapstructure:"DEFAULT_TIMEZONE"`

	AccessCacheTTLSeconds int `mapstructure:"ACCESS_CACHE_TTL_SECONDS"`
	BackendTimeoutSeconds int `mapstructure:"BACKEND_TIMEOUT_SECONDS"`
}

var requiredKeys = []string{"DB_URL", "JWT_SECRET", "RUANGOBAT_API_URL"}

// Load reads an optional .env file from path, then the process environment.
func Load(path string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DEFAULT_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("ACCESS_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)

	for _, key := range []string{
		"PORT", "DB_URL", "JWT_SECRET", "RUANGOBAT_API_URL", "CORS_ORIGIN",
		"ROLLBAR_TOKEN", "APP_ENV", "DEFAULT_TIMEZONE",
		"ACCESS_CACHE_TTL_SECONDS", "BACKEND_TIMEOUT_SECONDS",
	} {
		_ = viper.BindEnv(key)
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required environment variable(s): %s", strings.Join(missing, ", "))
	}

	cfg.RuangobatAPIURL = strings.TrimRight(strings.TrimSpace(cfg.RuangobatAPIURL), "/")
	if cfg.AccessCacheTTLSeconds <= 0 {
		log.Printf("level=warn component=config msg=\"non-positive access cache ttl; using default\" value=%d", cfg.AccessCacheTTLSeconds)
		cfg.AccessCacheTTLSeconds = 30
	}
	if cfg.BackendTimeoutSeconds <= 0 {
		cfg.BackendTimeoutSeconds = 15
	}

	return cfg, nil
}
