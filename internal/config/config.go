package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret"`
		AccessTTL  int    `yaml:"access_ttl_minutes"`
		RefreshTTL int    `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	Storage StorageConfig `yaml:"storage"`

	Media struct {
		BaseURL       string   `yaml:"base_url"`        // prefix for relative media URLs
		MaxImageSize  int64    `yaml:"max_image_size"`  // bytes
		MaxVideoSize  int64    `yaml:"max_video_size"`  // bytes
		AllowedImages []string `yaml:"allowed_images"`  // MIME types
		AllowedVideos []string `yaml:"allowed_videos"`  // MIME types
		ImageQuality  int      `yaml:"image_quality"`   // JPEG quality (1-100)
		MaxImageEdge  int      `yaml:"max_image_edge"`  // longest edge after recompression
	} `yaml:"media"`

	Email EmailConfig `yaml:"email"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

type StorageConfig struct {
	Type       string `yaml:"type"`        // local, s3, cloudflare_r2
	BasePath   string `yaml:"base_path"`   // For local storage
	BaseURL    string `yaml:"base_url"`    // Public URL base
	Bucket     string `yaml:"bucket"`      // For S3/R2
	Region     string `yaml:"region"`      // For S3
	AccessKey  string `yaml:"access_key"`  // For S3/R2
	SecretKey  string `yaml:"secret_key"`  // For S3/R2
	Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
	UseSSL     bool   `yaml:"use_ssl"`     // For S3/R2
	PublicRead bool   `yaml:"public_read"` // Make files public
}

type EmailConfig struct {
	Host     string `yaml:"smtp_host"`
	Port     int    `yaml:"smtp_port"`
	Username string `yaml:"smtp_user"`
	Password string `yaml:"smtp_password"`
	From     string `yaml:"from_email"`
	FromName string `yaml:"from_name"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Environment-driven configuration (tests, containers)
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.AccessTTL == 0 {
		cfg.JWT.AccessTTL = 60
	}
	if cfg.JWT.RefreshTTL == 0 {
		cfg.JWT.RefreshTTL = 24 * 30
	}
	if cfg.Media.MaxImageSize == 0 {
		cfg.Media.MaxImageSize = 5 * 1024 * 1024 // 5MB
	}
	if cfg.Media.MaxVideoSize == 0 {
		cfg.Media.MaxVideoSize = 20 * 1024 * 1024 // 20MB
	}
	if len(cfg.Media.AllowedImages) == 0 {
		cfg.Media.AllowedImages = []string{"image/jpeg", "image/png", "image/webp"}
	}
	if len(cfg.Media.AllowedVideos) == 0 {
		cfg.Media.AllowedVideos = []string{"video/mp4", "video/quicktime"}
	}
	if cfg.Media.ImageQuality == 0 {
		cfg.Media.ImageQuality = 85
	}
	if cfg.Media.MaxImageEdge == 0 {
		cfg.Media.MaxImageEdge = 1600
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
