package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB holds the GridFS file storage
	MongoDB MongoDBConfig `json:"mongodb"`

	// Redis backs the realtime relay and the task queue
	Redis RedisConfig `json:"redis"`

	JWT JWTConfig `json:"jwt"`

	// Evolution API (WhatsApp provider) defaults
	Evolution EvolutionConfig `json:"evolution"`

	Queue QueueConfig `json:"queue"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port           string   `json:"port"`
	Host           string   `json:"host"`
	GRPCHealthPort string   `json:"grpc_health_port"`
	ReadTimeout    int      `json:"read_timeout"`
	WriteTimeout   int      `json:"write_timeout"`
	Environment    string   `json:"environment"` // development, staging, production
	AllowedOrigins []string `json:"allowed_origins"`
	FilesBaseURL   string   `json:"files_base_url"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string `json:"driver"` // mysql or postgres
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	SSLMode      string `json:"ssl_mode"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
	Enabled  bool   `json:"enabled"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Enabled  bool   `json:"enabled"`
}

type JWTConfig struct {
	Secret        string `json:"-"`
	Issuer        string `json:"issuer"`
	ExpirationHrs int    `json:"expiration_hours"`
}

type EvolutionConfig struct {
	TimeoutSeconds int  `json:"timeout_seconds"`
	SendDelayMs    int  `json:"send_delay_ms"`
	LinkPreview    bool `json:"link_preview"`
}

// QueueConfig sizes the boleto generation worker pool
type QueueConfig struct {
	Workers     int    `json:"workers"`
	BoletoQueue string `json:"boleto_queue"`
	PollTimeout int    `json:"poll_timeout"` // seconds
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, console
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig reads an optional .env file and builds the configuration from
// the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	port := getEnv("SERVER_PORT", "3000")

	return &Config{
		Server: ServerConfig{
			Port:           port,
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GRPCHealthPort: getEnv("GRPC_HEALTH_PORT", "3001"),
			ReadTimeout:    getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:   getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:    getEnv("APP_ENV", "development"),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			FilesBaseURL:   getEnv("FILES_BASE_URL", fmt.Sprintf("http://localhost:%s/api/v1/files/", port)),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "mysql"),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "3306"),
			Username:     getEnv("DB_USER", "finance"),
			Password:     getEnv("DB_PASSWORD", "finance123"),
			DatabaseName: getEnv("DB_NAME", "agilefinance"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "agilefinance"),
			Bucket:   getEnv("MONGO_BUCKET", "finance_files"),
			Enabled:  getEnvAsBool("MONGO_ENABLED", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			Issuer:        getEnv("JWT_ISSUER", "agilefinance"),
			ExpirationHrs: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Evolution: EvolutionConfig{
			TimeoutSeconds: getEnvAsInt("EVOLUTION_TIMEOUT", 30),
			SendDelayMs:    getEnvAsInt("EVOLUTION_SEND_DELAY_MS", 1200),
			LinkPreview:    getEnvAsBool("EVOLUTION_LINK_PREVIEW", true),
		},
		Queue: QueueConfig{
			Workers:     getEnvAsInt("QUEUE_WORKERS", 3),
			BoletoQueue: getEnv("BOLETO_QUEUE", "queue:boleto_generation"),
			PollTimeout: getEnvAsInt("QUEUE_POLL_TIMEOUT", 5),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
	}
}

// DSN builds the driver-specific connection string.
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}

	if cfg.Database.Driver == "postgres" {
		if cfg.Database.Port == "" {
			cfg.Database.Port = "5432"
		}
		sslMode := cfg.Database.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.DatabaseName,
			sslMode,
		)
	}

	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" || cfg.MongoDB.Password == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
		cfg.MongoDB.Database,
	)
}

func (cfg *Config) IsDevelopment() bool {
	return cfg.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
