package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	PaymentDB  `yaml:"payment_db"`
	Trexle     `yaml:"trexle"`
	Redis      `yaml:"redis"`
	Kafka      `yaml:"kafka"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type PaymentDB struct {
	Dsn string `yaml:"dsn" env:"PAYMENT_DB_DSN"`
}

type Trexle struct {
	APIBase         string `yaml:"api_base" env-default:"https://core.trexle.com/api/v1"`
	SecretKey       string `yaml:"secret_key" env:"TREXLE_SECRET_KEY"`
	TimeoutSeconds  int    `yaml:"timeout_seconds" env-default:"30"`
	DefaultCurrency string `yaml:"default_currency" env-default:"USD"`
	StorefrontKey   string `yaml:"storefront_key" env:"TREXLE_STOREFRONT_KEY"`
}

type Redis struct {
	Addr              string `yaml:"addr" env-default:"localhost:6379"`
	Password          string `yaml:"password" env:"REDIS_PASSWORD"`
	DB                int    `yaml:"db" env-default:"0"`
	SessionTTLMinutes int    `yaml:"session_ttl_minutes" env-default:"60"`
}

type Kafka struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"payment-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

func MustLoad() *PaymentConfig {

	// Processing env config variable and file
	configPath := os.Getenv("TREXLE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("TREXLE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
