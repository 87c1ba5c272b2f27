package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	Mongo      MongoConfig
}

type MongoConfig struct {
	// URI, when set, overrides the individual connection fields.
	URI      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	mongoConfig := MongoConfig{
		URI:      getEnv("MONGO_URI", ""),
		Host:     getEnv("MONGO_HOST", "localhost"),
		Port:     getEnvInt("MONGO_PORT", 27017),
		User:     getEnv("MONGO_USER", ""),
		Password: getEnv("MONGO_PASSWORD", ""),
		DBName:   getEnv("MONGO_DB", "exercise_tracker"),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 3000),
		Mongo:      mongoConfig,
	}
}

// ConnectionURI returns the mongodb:// URI for the configured store.
func (c MongoConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}

	u := &url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
