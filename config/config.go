package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	JWT      JWT
	CORS     CORS
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret string
	Expiry time.Duration
}

type CORS struct {
	AllowedOrigin string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	// Tokens outlive a sitting but not a weekend: two days.
	viper.SetDefault("JWT_EXPIRY_HOURS", 48)
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.Expiry = time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour

	config.CORS.AllowedOrigin = viper.GetString("CORS_ALLOWED_ORIGIN")

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
