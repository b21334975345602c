package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreBackend string // postgres, mongo, memory

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MongoURI      string
	MongoDatabase string

	TelegramToken string
	TelegramMode  string // polling, webhook
	AllowedUserID string

	ServerPort        string
	JWTSecret         string
	AdminPasswordHash string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		StoreBackend: getEnv("STORE_BACKEND", "postgres"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "jagahva"),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "jagahva"),

		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramMode:  getEnv("TELEGRAM_MODE", "polling"),
		AllowedUserID: getEnv("ALLOWED_USER_ID", ""),

		ServerPort:        getEnv("SERVER_PORT", "3000"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
