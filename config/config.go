package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
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
	LogLevel   string
	LogFormat  string
)

// fileConfig mirrors the optional config.yaml. Env vars win over file values.
type fileConfig struct {
	JwtSecret  string `yaml:"jwt_secret"`
	DbHost     string `yaml:"db_host"`
	DbPort     string `yaml:"db_port"`
	DbUser     string `yaml:"db_user"`
	DbPassword string `yaml:"db_password"`
	DbName     string `yaml:"db_name"`
	ServerPort string `yaml:"server_port"`
	Issuer     string `yaml:"issuer"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	file := loadConfigFile(getEnv("CONFIG_FILE", "config.yaml"))

	JwtSecret = getEnv("JWT_SECRET", orDefault(file.JwtSecret, "defaultsecret"))
	DbHost = getEnv("DB_HOST", orDefault(file.DbHost, "localhost"))
	DbPort = getEnv("DB_PORT", orDefault(file.DbPort, "5432"))
	DbUser = getEnv("DB_USER", orDefault(file.DbUser, "postgres"))
	DbPassword = getEnv("DB_PASSWORD", orDefault(file.DbPassword, "password"))
	DbName = getEnv("DB_NAME", orDefault(file.DbName, "homepage"))
	ServerPort = getEnv("SERVER_PORT", orDefault(file.ServerPort, "8080"))
	Issuer = getEnv("ISSUER", orDefault(file.Issuer, "farm-homepage"))
	LogLevel = getEnv("LOG_LEVEL", orDefault(file.LogLevel, "info"))
	LogFormat = getEnv("LOG_FORMAT", orDefault(file.LogFormat, "json"))
}

func loadConfigFile(path string) fileConfig {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Failed to parse %s: %v", path, err)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
