package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	GigaChat  GigaChatConfig
	Embedding EmbeddingConfig
	RAG       RAGConfig
	Session   SessionConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig selects the database/sql driver. Driver is "sqlite3" or "pgx".
type DatabaseConfig struct {
	Driver string
	DSN    string
}

type LLMConfig struct {
	Provider  string // ollama | gigachat
	BaseURL   string
	Model     string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type EmbeddingConfig struct {
	Provider  string // openai | hashing
	BaseURL   string
	APIKey    string
	Model     string
	Dimension int
}

type RAGConfig struct {
	Threshold float64
}

type SessionConfig struct {
	Store         string // memory | redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "180"))
	llmTimeout, _ := strconv.Atoi(getEnv("LLM_TIMEOUT", "120"))
	rateLimit, _ := strconv.ParseFloat(getEnv("LLM_RATE_LIMIT", "0"), 64)
	dimension, _ := strconv.Atoi(getEnv("EMBEDDING_DIMENSION", "384"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	threshold, err := strconv.ParseFloat(getEnv("RAG_THRESHOLD", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RAG_THRESHOLD: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite3"),
			DSN:    getEnv("DB_DSN", "order_management.db"),
		},
		LLM: LLMConfig{
			Provider:  getEnv("LLM_PROVIDER", "ollama"),
			BaseURL:   getEnv("OLLAMA_URL", "http://localhost:11434"),
			Model:     getEnv("LLM_MODEL", "llama2"),
			Timeout:   time.Duration(llmTimeout) * time.Second,
			RateLimit: rateLimit,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Embedding: EmbeddingConfig{
			Provider:  getEnv("EMBEDDING_PROVIDER", "openai"),
			BaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:11434/v1/"),
			APIKey:    getEnv("EMBEDDING_API_KEY", "ollama"),
			Model:     getEnv("EMBEDDING_MODEL", "all-minilm"),
			Dimension: dimension,
		},
		RAG: RAGConfig{
			Threshold: threshold,
		},
		Session: SessionConfig{
			Store:         getEnv("SESSION_STORE", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			RedisPrefix:   getEnv("REDIS_PREFIX", "chatbot:"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.LLM.Provider {
	case "ollama":
	case "gigachat":
		if c.GigaChat.APIKey == "" {
			return fmt.Errorf("GIGACHAT_API_KEY is required for the gigachat provider")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}

	switch c.Embedding.Provider {
	case "openai", "hashing":
	default:
		return fmt.Errorf("unsupported EMBEDDING_PROVIDER %q", c.Embedding.Provider)
	}

	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.Session.Store)
	}

	if c.RAG.Threshold < 0 || c.RAG.Threshold > 1 {
		return fmt.Errorf("RAG_THRESHOLD must be within [0, 1], got %v", c.RAG.Threshold)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
