// Package config carrega a configuração do relay a partir de variáveis de
// ambiente. Credenciais nunca ficam no código-fonte e nunca aparecem em log
// sem máscara.
package config

import (
	"os"
	"strconv"
)

// Default values for non-secret settings. The GhostPay URL is the production
// transactions endpoint; credentials have no default on purpose.
const (
	DefaultPort        = 5000
	DefaultGhostPayURL = "https://api.ghostspaysv2.com/functions/v1/transactions"
)

// Config holds every runtime setting of the relay.
type Config struct {
	Port        int
	GhostPayURL string

	SecretKey  string
	CompanyID  string
	AuthScheme string // "basic" or "bearer"

	CORSOrigin string

	// DebugPayloads enables verbose logging of outbound payloads and raw
	// processor responses. Off by default; secrets are masked even when on.
	DebugPayloads bool
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:          DefaultPort,
		GhostPayURL:   DefaultGhostPayURL,
		SecretKey:     os.Getenv("GHOSTPAY_SECRET_KEY"),
		CompanyID:     os.Getenv("GHOSTPAY_COMPANY_ID"),
		AuthScheme:    "basic",
		CORSOrigin:    "*",
		DebugPayloads: os.Getenv("DEBUG_PAYLOADS") == "true",
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	if url := os.Getenv("GHOSTPAY_URL"); url != "" {
		cfg.GhostPayURL = url
	}
	if scheme := os.Getenv("GHOSTPAY_AUTH_SCHEME"); scheme != "" {
		cfg.AuthScheme = scheme
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.CORSOrigin = origin
	}
	return cfg
}

// MaskedSecret retorna apenas o prefixo da secret key para logs e endpoints
// de diagnóstico.
func (c Config) MaskedSecret() string {
	return MaskSecret(c.SecretKey)
}

// MaskSecret truncates a credential to its first 8 characters. Short values
// are fully hidden so the mask never reveals the whole secret.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "***"
	}
	return s[:8] + "..."
}
