package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	WhatsAppAPIURL string
	WhatsAppToken  string

	// DefaultMaxRequests caps an admin's active assignments when neither a
	// per-admin nor a global override is set.
	DefaultMaxRequests = 10

	// CompletedStatuses are the request statuses counted as finished work in
	// progress reports.
	CompletedStatuses = []string{"DOC-READY", "RELEASED"}

	// Intake window defaults, used when no restriction row exists or its
	// stored times are unparsable.
	DefaultStartTime = "09:00:00"
	DefaultEndTime   = "17:00:00"
	DefaultDays      = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "odr")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("Issuer", "odr")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "odr-files")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	WhatsAppAPIURL = getEnv("WHATSAPP_API_URL", "")
	WhatsAppToken = getEnv("WHATSAPP_TOKEN", "")

	DefaultMaxRequests, _ = strconv.Atoi(getEnv("DEFAULT_MAX_REQUESTS", "10"))
	if DefaultMaxRequests <= 0 {
		DefaultMaxRequests = 10
	}
	CompletedStatuses = splitCSV(getEnv("COMPLETED_STATUSES", "DOC-READY,RELEASED"))

	DefaultStartTime = getEnv("DEFAULT_START_TIME", "09:00:00")
	DefaultEndTime = getEnv("DEFAULT_END_TIME", "17:00:00")
	DefaultDays = splitCSV(getEnv("DEFAULT_DAYS", "Monday,Tuesday,Wednesday,Thursday,Friday"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
