// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/shopfront/internal/server/auth"
)

// Config holds runtime settings for the Shopfront server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabaseDSN: either a postgres:// URL (pgx) or a SQLite file path.
//   - SecretKey / Algorithm: HMAC secret and algorithm for signing tokens.
//     When either is missing, token issuance and verification are disabled
//     and every request is anonymous.
//   - EncryptionKey: base64 AES key for at-rest field encryption. Missing or
//     malformed values are a fatal startup error.
//   - AccessTokenTTL: access token lifetime. Non-positive values are passed
//     through as configured: issued tokens are already expired and never
//     verify.
type Config struct {
	Address        string
	DatabaseDSN    string
	SecretKey      string
	Algorithm      string
	EncryptionKey  string
	AccessTokenTTL time.Duration
}

// LoadDefaults populates Config with development defaults. Secrets and the
// signing algorithm have no defaults on purpose: they must come from the
// environment, and leaving either unset disables token issuance and
// verification entirely.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.DatabaseDSN = "shopfront.db"
	c.AccessTokenTTL = auth.DefaultTTL
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
