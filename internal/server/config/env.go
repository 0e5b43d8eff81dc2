package config

import (
	"os"
	"strconv"
	"time"
)

// Recognized environment variables. SECRET_KEY, ALGORITHM, and
// ENCRYPTION_KEY are the external configuration contract; the rest cover
// deployment plumbing.
const (
	envSecretKey      = "SECRET_KEY"
	envAlgorithm      = "ALGORITHM"
	envEncryptionKey  = "ENCRYPTION_KEY"
	envDatabaseDSN    = "DATABASE_DSN"
	envAddress        = "ADDRESS"
	envAccessTokenTTL = "ACCESS_TOKEN_TTL"
)

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the current value untouched; ACCESS_TOKEN_TTL is a number
// of seconds and is ignored when unparsable.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(envSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(envAlgorithm); ok {
		config.Algorithm = v
	}
	if v, ok := os.LookupEnv(envEncryptionKey); ok {
		config.EncryptionKey = v
	}
	if v, ok := os.LookupEnv(envDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(envAddress); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv(envAccessTokenTTL); ok {
		if seconds, err := strconv.Atoi(v); err == nil {
			config.AccessTokenTTL = time.Duration(seconds) * time.Second
		}
	}
}
