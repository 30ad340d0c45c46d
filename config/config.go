package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret []byte
	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPass     string
}

func LoadConfig() (*Config, error) {
	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		smtpPort = p
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "kirieshka-dev-secret"
	}

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: []byte(secret),
		SMTPHost:      smtpHost,
		SMTPPort:      smtpPort,
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
	}, nil
}

// EmailConfigured reports whether real SMTP delivery is possible. Without
// both credentials the dispatcher runs in log-only mode.
func (c *Config) EmailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}
