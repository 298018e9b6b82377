package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Fetch modes understood by the base scraper
const (
	FetchModeHTTP     = "http"
	FetchModeChromeDP = "chromedp"
	FetchModeSelenium = "selenium"
)

// Config holds everything a single scrape run needs
type Config struct {
	URL        string
	Count      int
	ImageDir   string
	OutputFile string

	UserAgent string
	Timeout   time.Duration
	FetchMode string

	// DownloadWorkers > 1 downloads card images in parallel
	DownloadWorkers int
	ConvertToJPEG   bool

	ChromeDriverPath string

	// Optional MongoDB persistence, disabled when MongoURI is empty
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// Optional S3 mirror, disabled when AWSBucketName is empty
	AWSRegion     string
	AWSBucketName string
	AWSPrefix     string
}

// Default returns the configuration used when no environment overrides exist.
func Default() Config {
	return Config{
		URL:        "https://carma.com.au/",
		Count:      3,
		ImageDir:   "img",
		OutputFile: "carma_scraped_data.json",

		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/98.0.4758.102 Safari/537.36",
		Timeout:   30 * time.Second,
		FetchMode: FetchModeHTTP,

		DownloadWorkers: 1,

		ChromeDriverPath: "/usr/local/bin/chromedriver",

		MongoDatabase:   "carma",
		MongoCollection: "listings",

		AWSRegion: "ap-southeast-2",
		AWSPrefix: "carma",
	}
}

// LoadConfig loads environment variables from .env file and applies them on top of Default
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	cfg := Default()
	cfg.URL = getEnv("SCRAPE_URL", cfg.URL)
	cfg.Count = getEnvInt("SCRAPE_COUNT", cfg.Count)
	cfg.ImageDir = getEnv("IMAGE_DIR", cfg.ImageDir)
	cfg.OutputFile = getEnv("OUTPUT_FILE", cfg.OutputFile)

	cfg.UserAgent = getEnv("USER_AGENT", cfg.UserAgent)
	cfg.Timeout = getEnvDuration("HTTP_TIMEOUT", cfg.Timeout)
	cfg.FetchMode = getEnv("FETCH_MODE", cfg.FetchMode)

	cfg.DownloadWorkers = getEnvInt("DOWNLOAD_WORKERS", cfg.DownloadWorkers)
	cfg.ConvertToJPEG = getEnvBool("CONVERT_TO_JPEG", cfg.ConvertToJPEG)

	cfg.ChromeDriverPath = getEnv("CHROMEDRIVER_PATH", cfg.ChromeDriverPath)

	cfg.MongoURI = os.Getenv("MONGO_URI")
	cfg.MongoDatabase = getEnv("MONGO_DATABASE", cfg.MongoDatabase)
	cfg.MongoCollection = getEnv("MONGO_COLLECTION", cfg.MongoCollection)

	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
	cfg.AWSPrefix = getEnv("AWS_PREFIX", cfg.AWSPrefix)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return parsed
}
