package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp biến môi trường từ file .env
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

// GetEnv đọc một biến môi trường
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault đọc biến môi trường, dùng fallback nếu trống
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BackendBaseURL trả về base URL của kho dữ liệu property
func BackendBaseURL() string {
	return GetEnvDefault("BACKEND_API_URL", "http://localhost:3001/api")
}
