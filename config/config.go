package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Origins allowed by the CORS middleware
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	}

	// Artifacts configuration
	Artifacts struct {
		// Path to the pre-trained price model
		ModelPath string `env:"MODEL_PATH" envDefault:"artifacts/price_model.json"`

		// Path to the pre-fitted feature scaler
		ScalerPath string `env:"SCALER_PATH" envDefault:"artifacts/feature_scaler.json"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
