package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dojanjanjan/charm-reservations/internal/auth"
)

type Config struct {
	ListenAddr  string
	DatabaseURL string

	CookieHashKey  []byte
	CookieBlockKey []byte

	// PINHash is the bcrypt hash the login endpoint checks entered PINs
	// against.
	PINHash []byte

	// FloorPlanPath optionally points at a YAML file overriding the default
	// tables and opening hours.
	FloorPlanPath string

	SMTPAddr     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// DevMode swaps postgres for the in-memory store and SMTP for a log
	// sender, and relaxes the required settings accordingly.
	DevMode bool
}

// devPIN is the fixed dev-mode PIN; ignored whenever a real PIN is configured.
const devPIN = "0409"

// FromEnv builds the config from the environment, reading a .env file first
// when one is present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:    envDefault("LISTEN_ADDR", ":8080"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		FloorPlanPath: strings.TrimSpace(os.Getenv("FLOOR_PLAN_PATH")),
		SMTPAddr:      strings.TrimSpace(os.Getenv("SMTP_ADDR")),
		SMTPUsername:  strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      envDefault("MAIL_FROM", "reservations@charmthai.example"),
		DevMode:       strings.TrimSpace(os.Getenv("DEV_MODE")) == "1",
	}

	if !cfg.DevMode && cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required (or set DEV_MODE=1)")
	}

	var err error
	cfg.CookieHashKey, err = keyFromEnv("COOKIE_HASH_KEY", cfg.DevMode)
	if err != nil {
		return cfg, err
	}
	cfg.CookieBlockKey, err = keyFromEnv("COOKIE_BLOCK_KEY", cfg.DevMode)
	if err != nil {
		return cfg, err
	}

	cfg.PINHash, err = pinHashFromEnv(cfg.DevMode)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

func pinHashFromEnv(devMode bool) ([]byte, error) {
	if h := strings.TrimSpace(os.Getenv("STAFF_PIN_HASH")); h != "" {
		return []byte(h), nil
	}
	pin := strings.TrimSpace(os.Getenv("STAFF_PIN"))
	if pin == "" {
		if !devMode {
			return nil, fmt.Errorf("STAFF_PIN_HASH is required (generate one with `charmd pin hash`)")
		}
		pin = devPIN
	}
	return auth.HashPIN(pin)
}

// keyFromEnv decodes a base64 cookie key. Dev mode falls back to a fixed,
// obviously insecure key so the server starts with zero setup.
func keyFromEnv(name string, devMode bool) ([]byte, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		if devMode {
			return []byte(strings.Repeat(name, 4))[:32], nil
		}
		return nil, fmt.Errorf("%s is required (base64, generate with `charmd keys`)", name)
	}
	if b, err := base64.StdEncoding.DecodeString(v); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}
