package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// Settings is read once at startup and passed to the components that need it.
type Settings struct {
	Env  string
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisUser     string
	RedisPassword string

	AccessTokenSecret string
	AccessTokenTTL    time.Duration
	BcryptCost        int

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	ContactEmail string

	CloudinaryURL string
	RabbitMQURL   string

	RejectOverlappingBookings bool
	BookingCompletionJob      bool
	AutoMigrate               bool
	Seed                      bool
	LogLevel                  string
}

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

func Load() (Settings, error) {
	s := Settings{
		Env:  envStr("ENV", "dev"),
		Port: envStr("PORT", "8083"),

		DBHost:     envStr("DB_HOST", "localhost"),
		DBPort:     envStr("DB_PORT", "5432"),
		DBUser:     envStr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envStr("DB_NAME", "hotelbooking"),
		DBSSLMode:  envStr("DB_SSLMODE", "disable"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AccessTokenSecret: os.Getenv("SECRET_KEY_ACCESS_TOKEN"),
		AccessTokenTTL:    time.Duration(envInt("ACCESS_TOKEN_TTL_MIN", 60*24*3)) * time.Minute,
		BcryptCost:        envInt("BCRYPT_COST", 10),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envStr("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromEmail:    os.Getenv("FROM_EMAIL"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),

		RejectOverlappingBookings: envBool("REJECT_OVERLAPPING_BOOKINGS", false),
		BookingCompletionJob:      envBool("BOOKING_COMPLETION_JOB", false),
		AutoMigrate:               envBool("AUTO_MIGRATE", true),
		Seed:                      envBool("SEED", false),
		LogLevel:                  envStr("LOG_LEVEL", "info"),
	}

	if s.AccessTokenSecret == "" {
		return s, fmt.Errorf("SECRET_KEY_ACCESS_TOKEN is required")
	}
	if s.AccessTokenTTL <= 0 {
		return s, fmt.Errorf("ACCESS_TOKEN_TTL_MIN must be positive")
	}
	return s, nil
}

func (s Settings) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort, s.DBSSLMode)
}

// ConnectCloudinary returns nil when no CLOUDINARY_URL is set; uploads then fail as UPSTREAM.
func ConnectCloudinary(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return cld, nil
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}
