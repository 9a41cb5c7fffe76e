package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string

	// Payment gateway
	RazorpayKey     string
	RazorpaySecret  string
	PaymentCurrency string
	SiteDomain      string

	// Identity provider
	FirebaseProjectID       string
	FirebaseCredentialsFile string

	SessionSecret string
	RedisAddr     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// LoadConfig loads configuration from the .env file (when present) and environment variables
func LoadConfig() (*Config, error) {
	// A missing .env is fine; deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	config := &Config{
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              getEnv("DB_PASSWORD", "postgres"),
		DBName:                  getEnv("DB_NAME", "bookscourier"),
		Port:                    getEnv("PORT", "5000"),
		Env:                     getEnv("ENV", "development"),
		RazorpayKey:             os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret:          os.Getenv("RAZORPAY_SECRET"),
		PaymentCurrency:         getEnv("PAYMENT_CURRENCY", "INR"),
		SiteDomain:              getEnv("SITE_DOMAIN", "http://localhost:5173"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SessionSecret:           getEnv("SESSION_SECRET", "bookscourier-session"),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		SMTPHost:                os.Getenv("SMTP_HOST"),
		SMTPPort:                smtpPort,
		SMTPUsername:            os.Getenv("SMTP_USERNAME"),
		SMTPPassword:            os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:                os.Getenv("SMTP_FROM"),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
