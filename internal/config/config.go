package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	GinMode string
	DB      DatabaseConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Storage StorageConfig
}

type DatabaseConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTL for cached storefront reads.
	CacheTTL time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type StorageConfig struct {
	Driver string // local | s3
	Local  LocalStorageConfig
	S3     S3StorageConfig
}

type LocalStorageConfig struct {
	Dir       string
	URLPrefix string
}

type S3StorageConfig struct {
	Region        string
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		DB: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "local"),
			Local: LocalStorageConfig{
				Dir:       getEnv("LOCAL_UPLOAD_DIR", "./storage/uploads"),
				URLPrefix: getEnv("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			},
			S3: S3StorageConfig{
				Region:        getEnv("S3_REGION", ""),
				Bucket:        getEnv("S3_BUCKET", ""),
				Prefix:        getEnv("S3_PREFIX", "uploads"),
				PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
