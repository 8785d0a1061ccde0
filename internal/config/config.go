package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	DBPath          string
	LogFile         string // empty disables the file sink
	TaxRate         float64
	PrintReceipts   bool
	RateLimitPerMin int
}

// Load reads an optional .env file, then the process environment.
func Load() Config {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", "pizza_pos.db") // sqlite file next to the binary
	v.SetDefault("LOG_FILE", "./pizzapos.log")
	v.SetDefault("TAX_RATE", 0.16)
	v.SetDefault("PRINT_RECEIPTS", true)
	v.SetDefault("RATE_LIMIT_PER_MIN", 120)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := Config{
		Port:            v.GetString("PORT"),
		DBPath:          v.GetString("DB_PATH"),
		LogFile:         v.GetString("LOG_FILE"),
		TaxRate:         v.GetFloat64("TAX_RATE"),
		PrintReceipts:   v.GetBool("PRINT_RECEIPTS"),
		RateLimitPerMin: v.GetInt("RATE_LIMIT_PER_MIN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "pizza_pos.db"
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 120
	}
	log.Printf("[config] PORT=%s DB_PATH=%s LOG_FILE=%s TAX_RATE=%.2f PRINT_RECEIPTS=%t",
		cfg.Port, cfg.DBPath, cfg.LogFile, cfg.TaxRate, cfg.PrintReceipts)
	return cfg
}
