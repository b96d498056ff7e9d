package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Record store backing: "file" keeps a flat JSON file under DataDir,
	// "postgres" uses the relational store.
	StoreBackend string
	DataDir      string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string

	// Session registry backing: "memory" or "redis".
	SessionBackend  string
	RedisAddr       string
	SessionTTLHours int

	JWTSecret  string
	AdminEmail string

	SMTPHost     string
	SMTPPort     string
	EmailSender  string
	SMTPPassword string

	FeedbackWebhookURL string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "data"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "skillshub"),

		SessionBackend:  getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 7*24),

		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@digitalskillshub.com"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		EmailSender:  getEnv("EMAIL_SENDER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		FeedbackWebhookURL: getEnv("FEEDBACK_WEBHOOK_URL", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return n
}
