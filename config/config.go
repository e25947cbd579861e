package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường theo key (.env nếu có)
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("")
	}
	return os.Getenv(key)
}

// ConfigOr trả về giá trị biến môi trường, nếu rỗng thì dùng fallback
func ConfigOr(key, fallback string) string {
	v := Config(key)
	if v == "" {
		return fallback
	}
	return v
}
