package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the car shop service.
type Config struct {
	Port          string
	AdminPassword string
	ShipmentFee   int
	SQLitePath    string
	Env           string
}

// LoadConfig reads configuration from environment variables, with an optional
// .env file for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SQLitePath:    getEnv("SQLITE_PATH", "car_orders.db"),
		Env:           getEnv("APP_ENV", "development"),
	}

	fee, err := strconv.Atoi(getEnv("SHIPMENT_FEE", "3000"))
	if err != nil || fee <= 0 {
		return nil, fmt.Errorf("SHIPMENT_FEE must be a positive integer")
	}
	cfg.ShipmentFee = fee

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
