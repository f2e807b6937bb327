package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type AffiliateConfig struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	AffiliateDB     `yaml:"affiliate_db"`
	LogConfig       `yaml:"log_config"`
	KafkaService    `yaml:"kafka-service"`
	TransferService `yaml:"transfer-service"`
	Events          `yaml:"events"`
	Tracking        `yaml:"tracking"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type AffiliateDB struct {
	Dsn string `yaml:"dsn"`
	// MigrationsPath is optional; empty skips the SQL migration runner.
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TransferService struct {
	Address string `yaml:"address"`
}

// Events guards the internal conversion webhook endpoints with a shared
// secret carried in the X-Internal-Token header.
type Events struct {
	SharedSecret string `yaml:"shared_secret" env:"AFFILIATE_EVENTS_SECRET"`
}

// Tracking carries the redirect fallbacks for the two platforms.
type Tracking struct {
	ShopBaseURL    string `yaml:"shop_base_url"`
	MotorevBaseURL string `yaml:"motorev_base_url"`
}

func MustLoad() *AffiliateConfig {

	// Processing env config variable and file
	configPath := os.Getenv("AFFILIATE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("AFFILIATE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg AffiliateConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
