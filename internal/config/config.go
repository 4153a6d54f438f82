package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dwellfront/dashboard-service/internal/constants"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

const AppName = "dashboard-service"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	// Auth
	RSAPublicKey *rsa.PublicKey

	// Exports
	ExportDir string

	// Behavior knobs
	SeedDemoData       bool
	EscalationMaxAge   time.Duration
	UploadDelay        time.Duration
	CORSAllowLocalhost bool
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}

	pubB64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if pubB64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("RSA_PUBLIC_KEY_BASE64 is not valid base64")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = constants.DefaultExportDir
	}

	return &Config{
		AppName:            AppName,
		AppPort:            appPort,
		AppUrl:             appUrl,
		RSAPublicKey:       pubKey,
		ExportDir:          exportDir,
		SeedDemoData:       envBool("SEED_DEMO_DATA", true),
		EscalationMaxAge:   envDurationHours("ESCALATION_MAX_AGE_HOURS", constants.DefaultEscalationMaxAge),
		UploadDelay:        envDurationMillis("UPLOAD_DELAY_MS", constants.DefaultUploadDelay),
		CORSAllowLocalhost: envBool("CORS_ALLOW_LOCALHOST", true),
	}
}

func (c *Config) Close() {}

func envBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %t", key, raw, def)
		return def
	}
	return v
}

func envDurationHours(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %s", key, raw, def)
		return def
	}
	return time.Duration(v) * time.Hour
}

func envDurationMillis(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		utils.Logger.Warnf("Invalid %s '%s', defaulting to %s", key, raw, def)
		return def
	}
	return time.Duration(v) * time.Millisecond
}
