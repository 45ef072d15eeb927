package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"hotel-checkin/models"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config is the process configuration, read once at boot.
type Config struct {
	Port          string   `env:"PORT"            envDefault:"8080"`
	PublicBaseURL string   `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	CorsOrigins   []string `env:"CORS_ORIGINS"    envSeparator:","`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"`
	StorageDir    string `env:"STORAGE_DIR"    envDefault:"./data"`
	StorageKey    string `env:"STORAGE_KEY"    envDefault:"noga_guest_history"`
	SQLitePath    string `env:"SQLITE_PATH"    envDefault:"./data/checkin.db"`

	IDCaptureEnabled     bool          `env:"ID_CAPTURE_ENABLED"     envDefault:"true"`
	ExtractionEndpoint   string        `env:"EXTRACTION_ENDPOINT"`
	ExtractionAPIKey     string        `env:"EXTRACTION_API_KEY"`
	ExtractionModel      string        `env:"EXTRACTION_MODEL"       envDefault:"gemini-2.5-flash"`
	ExtractionResultPath string        `env:"EXTRACTION_RESULT_PATH" envDefault:"candidates.0.content.parts.0.text"`
	ExtractionTimeout    time.Duration `env:"EXTRACTION_TIMEOUT"     envDefault:"30s"`

	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"es"`
	Timezone        string `env:"TIMEZONE"         envDefault:"Local"`

	HotelName       string `env:"HOTEL_NAME"       envDefault:"Hotel Noga"`
	HotelWebsite    string `env:"HOTEL_WEBSITE"    envDefault:"https://www.hnoga.com"`
	HotelHandle     string `env:"HOTEL_HANDLE"     envDefault:"@HOTELNOGA"`
	PenaltyCurrency string `env:"PENALTY_CURRENCY" envDefault:"MXN"`
}

// Load reads .env (optional) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case DriverFile, DriverSQLite, DriverMySQL:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	cfg.CorsOrigins = cleanList(cfg.CorsOrigins)
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	return cfg, nil
}

// Location resolves TIMEZONE, falling back to the host zone.
func (c Config) Location() *time.Location {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || strings.EqualFold(name, "Local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ unknown TIMEZONE %q, using Local: %v", name, err)
		return time.Local
	}
	return loc
}

// Hotel returns the branding block.
func (c Config) Hotel() models.HotelProfile {
	return models.HotelProfile{
		Name:     c.HotelName,
		Website:  c.HotelWebsite,
		Handle:   c.HotelHandle,
		Currency: c.PenaltyCurrency,
	}
}

// ExtractionEnabled reports whether an extraction service is configured.
func (c Config) ExtractionEnabled() bool {
	return strings.TrimSpace(c.ExtractionEndpoint) != ""
}

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, part := range in {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
