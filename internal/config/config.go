package config

import (
	"os"
	"strconv"
)

type SMTPConfig struct {
	Host          string
	Port          string
	Username      string
	Password      string
	TLSMode       string // "", "starttls" or "tls"
	SkipVerifyTLS bool

	FromName string
	FromAddr string
}

func SMTPFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:          os.Getenv("SMTP_HOST"),
		Port:          envOr("SMTP_PORT", "587"),
		Username:      os.Getenv("SMTP_USERNAME"),
		Password:      os.Getenv("SMTP_PASSWORD"),
		TLSMode:       envOr("SMTP_TLS_MODE", "starttls"),
		SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS"),
		FromName:      envOr("MAIL_FROM_NAME", "Bebé Boutique"),
		FromAddr:      envOr("MAIL_FROM_ADDR", "no-reply@bebeboutique.mx"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}
