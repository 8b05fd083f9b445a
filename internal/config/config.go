// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Warehouse WarehouseConfig
	App       AppConfig
	Cache     CacheConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// WarehouseConfig holds the connection settings for the analytics warehouse
// that the source tables (demand plan, inventory, open POs, inbound) are
// extracted from.
type WarehouseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AppConfig struct {
	OutputDir    string
	LookupDir    string
	HorizonWeeks int
}

type CacheConfig struct {
	Enabled           bool
	RedisURL          string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	SummaryTTLSeconds int
}

// StorageConfig holds the S3-compatible object storage settings used to
// publish the forecast output files.
type StorageConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("WAREHOUSE_HOST", "localhost")
		viper.SetDefault("WAREHOUSE_PORT", "5439")
		viper.SetDefault("WAREHOUSE_USER", "forecast")
		viper.SetDefault("WAREHOUSE_PASSWORD", "")
		viper.SetDefault("WAREHOUSE_DB", "dev")
		viper.SetDefault("WAREHOUSE_SSLMODE", "require")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_OUTPUT_DIR", "./data/output")
		viper.SetDefault("APP_LOOKUP_DIR", "./config")
		viper.SetDefault("APP_HORIZON_WEEKS", 104)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_SUMMARY_TTL_SECONDS", 300)
		viper.SetDefault("STORAGE_ENABLED", false)
		viper.SetDefault("STORAGE_ENDPOINT", "")
		viper.SetDefault("STORAGE_ACCESS_KEY", "")
		viper.SetDefault("STORAGE_SECRET_KEY", "")
		viper.SetDefault("STORAGE_BUCKET", "forecast-output")
		viper.SetDefault("STORAGE_USE_SSL", true)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure output and lookup directories exist
		ensureDir(viper.GetString("APP_OUTPUT_DIR"))
		ensureDir(viper.GetString("APP_LOOKUP_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Warehouse: WarehouseConfig{
				Host:     viper.GetString("WAREHOUSE_HOST"),
				Port:     viper.GetString("WAREHOUSE_PORT"),
				User:     viper.GetString("WAREHOUSE_USER"),
				Password: viper.GetString("WAREHOUSE_PASSWORD"),
				DBName:   viper.GetString("WAREHOUSE_DB"),
				SSLMode:  viper.GetString("WAREHOUSE_SSLMODE"),
			},
			App: AppConfig{
				OutputDir:    viper.GetString("APP_OUTPUT_DIR"),
				LookupDir:    viper.GetString("APP_LOOKUP_DIR"),
				HorizonWeeks: viper.GetInt("APP_HORIZON_WEEKS"),
			},
			Cache: CacheConfig{
				Enabled:           viper.GetBool("CACHE_ENABLED"),
				RedisURL:          viper.GetString("REDIS_URL"),
				RedisHost:         viper.GetString("REDIS_HOST"),
				RedisPort:         viper.GetString("REDIS_PORT"),
				RedisPassword:     viper.GetString("REDIS_PASSWORD"),
				RedisDB:           viper.GetInt("REDIS_DB"),
				SummaryTTLSeconds: viper.GetInt("CACHE_SUMMARY_TTL_SECONDS"),
			},
			Storage: StorageConfig{
				Enabled:   viper.GetBool("STORAGE_ENABLED"),
				Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
				AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
				SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
				Bucket:    viper.GetString("STORAGE_BUCKET"),
				UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
