package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration, loaded from environment variables
// (optionally via a .env file for local development).
type Config struct {
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	DBDSN      string `mapstructure:"DB_DSN"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	BarcodeDir     string `mapstructure:"BARCODE_DIR"`
	CompanyName    string `mapstructure:"PDF_COMPANY_NAME"`
	CompanyAddress string `mapstructure:"PDF_COMPANY_ADDRESS"`
	TaxRatePct     string `mapstructure:"TAX_RATE_PCT"` // labels the CGST/SGST rows on invoice PDFs
}

func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "goldleaf")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("JWT_SECRET", "dev-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("ADMIN_USERNAME", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("BARCODE_DIR", "static/barcodes")
	viper.SetDefault("PDF_COMPANY_NAME", "Goldleaf Jewellers")
	viper.SetDefault("PDF_COMPANY_ADDRESS", "")
	viper.SetDefault("TAX_RATE_PCT", "3")

	// .env is optional: ignore a missing file, fail on a malformed one.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read .env: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// DSN assembles the postgres connection string when DB_DSN is not set
// explicitly.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}
