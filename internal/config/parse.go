package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Parse reads the environment, optionally seeded from a .env file in the working directory.
func Parse() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if cfg.Auth.MockUserID <= 0 {
		return Config{}, fmt.Errorf("parse cfg: AUTH_MOCK_USER_ID must be positive, got %d", cfg.Auth.MockUserID)
	}

	return cfg, nil
}
