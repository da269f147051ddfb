package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	AccessToken       string `mapstructure:"ACCESS_TOKEN"`
	ServiceCenterFile string `mapstructure:"SERVICE_CENTER_FILE"`
	EmulatorPort      string `mapstructure:"EMULATOR_PORT"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("SERVICE_CENTER_FILE", "data/service_centers.json")
	viper.SetDefault("EMULATOR_PORT", "5000")
	viper.SetDefault("JWT_SECRET", "dev-secret")

	viper.AutomaticEnv() // Read in environment variables that match

	err := viper.ReadInConfig()
	if err != nil {
		// A missing .env file is fine; everything has an env var or a default.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
