package config

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"yano-school/app/logger"
)

type Config struct {
	DB        *sql.DB
	Port      string
	JWTSecret string
}

var AppConfig *Config

// LoadEnv reads a .env file if present. Real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("no .env file found, using environment variables")
	}
}

// InitDB opens the PostgreSQL pool and fills AppConfig.
func InitDB() {
	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_PORT", "5432"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "yano_school"),
			envOr("DB_SSLMODE", "disable"),
		)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		logger.Log.Fatalf("failed to open database connection: %v", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		logger.Log.Fatalf("cannot establish database connection: %v", err)
	}

	AppConfig = &Config{
		DB:        db,
		Port:      envOr("PORT", "8080"),
		JWTSecret: envOr("JWT_SECRET", "yano-school-secret-key"),
	}
	logger.Log.Info("database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
