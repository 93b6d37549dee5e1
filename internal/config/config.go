package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

const AppName = "rental-api"

// Defaults for optional settings.
const (
	defaultNominatimBaseURL  = "https://nominatim.openstreetmap.org"
	defaultGeocoderUserAgent = AppName + "/1.0"
)

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	DatabaseURL string

	AWSRegion    string
	S3BucketName string

	NominatimBaseURL  string
	GeocoderUserAgent string
}

// LoadConfig reads the environment (an optional .env file first) and
// fails fast on anything the service cannot run without.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	awsRegion := os.Getenv("AWS_REGION")
	if awsRegion == "" {
		utils.Logger.Fatal("AWS_REGION env var is missing")
	}
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		utils.Logger.Fatal("S3_BUCKET_NAME env var is missing")
	}

	nominatimBaseURL := os.Getenv("NOMINATIM_BASE_URL")
	if nominatimBaseURL == "" {
		nominatimBaseURL = defaultNominatimBaseURL
	}
	geocoderUserAgent := os.Getenv("GEOCODER_USER_AGENT")
	if geocoderUserAgent == "" {
		geocoderUserAgent = defaultGeocoderUserAgent
	}

	utils.Logger.Infof("Loaded config for %s", AppName)

	return &Config{
		AppName:           AppName,
		AppPort:           appPort,
		AppUrl:            appURL,
		DatabaseURL:       dbURL,
		AWSRegion:         awsRegion,
		S3BucketName:      bucket,
		NominatimBaseURL:  nominatimBaseURL,
		GeocoderUserAgent: geocoderUserAgent,
	}
}
