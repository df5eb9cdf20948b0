package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	SchoolYear string
}

var AppConfig *Config

// InitDB loads environment configuration and opens the PostgreSQL pool.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getEnv("DB_HOST", "localhost")
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		port = 5432
	}
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "schoolhub")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=30",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:         db,
		SchoolYear: ResolveSchoolYear(time.Now()),
	}
	log.Println("Database connected successfully")
	log.Printf("Current school year: %s", AppConfig.SchoolYear)
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// CurrentSchoolYear returns the school year every aggregator and handler
// should use. A SCHOOL_YEAR env value wins; otherwise the label is derived
// from the clock so it rolls over without a redeploy.
func CurrentSchoolYear() string {
	if AppConfig != nil && AppConfig.SchoolYear != "" {
		return AppConfig.SchoolYear
	}
	return ResolveSchoolYear(time.Now())
}

// ResolveSchoolYear derives the "YYYY-YYYY+1" label. The academic year
// starts in June: May 2025 is still "2024-2025", June 2025 is "2025-2026".
func ResolveSchoolYear(now time.Time) string {
	if sy := os.Getenv("SCHOOL_YEAR"); sy != "" {
		return sy
	}
	year := now.Year()
	if now.Month() < time.June {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
