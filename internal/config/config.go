// Package config reads the configuration of the backend from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/finance-visualizer/backend/internal/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

type Config struct {
	// HTTP Server
	Port   string
	APIURL string

	// Storage backend selection
	Backend string

	// SQLite
	SQLitePath string

	// MongoDB
	MongoURI            string
	MongoDatabase       string
	MongoCollection     string
	MongoConnectTimeout time.Duration
}

// Load reads the configuration from the environment. Variables set in a
// .env file in the working directory are added to the environment first,
// existing variables are never overwritten.
func Load() *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080"),

		Backend: getEnv("DB_BACKEND", BackendSQLite),

		SQLitePath: getEnv("SQLITE_PATH", "data/gorm.db"),

		MongoURI:            getEnv("MONGO_URI", ""),
		MongoDatabase:       getEnv("MONGO_DATABASE", "finance"),
		MongoCollection:     getEnv("MONGO_COLLECTION", "transactions"),
		MongoConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 5*time.Second),
	}
}

// Validate checks the configuration and returns a single error
// listing every problem.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': scheme must be 'http' or 'https'", c.APIURL))
	}

	switch c.Backend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH cannot be empty when using the sqlite backend")
		}
	case BackendMongo:
		if c.MongoURI == "" {
			problems = append(problems, "MONGO_URI is required when using the mongo backend")
		}
		if c.MongoDatabase == "" {
			problems = append(problems, "MONGO_DATABASE cannot be empty when using the mongo backend")
		}
		if c.MongoCollection == "" {
			problems = append(problems, "MONGO_COLLECTION cannot be empty when using the mongo backend")
		}
		if c.MongoConnectTimeout <= 0 {
			problems = append(problems, fmt.Sprintf("invalid MONGO_CONNECT_TIMEOUT %v: must be positive", c.MongoConnectTimeout))
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_BACKEND '%s': must be one of [%s %s]", c.Backend, BackendSQLite, BackendMongo))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL. It must only be called after Validate.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// Mongo returns the configuration for the MongoDB store.
func (c *Config) Mongo() store.MongoConfig {
	return store.MongoConfig{
		URI:            c.MongoURI,
		Database:       c.MongoDatabase,
		Collection:     c.MongoCollection,
		ConnectTimeout: c.MongoConnectTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", value).Msg("not a valid duration, using default")
	}
	return defaultValue
}
