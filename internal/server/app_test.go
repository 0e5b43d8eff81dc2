package server

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopfront/internal/server/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EncryptionKey = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "shop.db")
	return cfg
}

func TestNewApp_BadEncryptionKey(t *testing.T) {
	cfg := testConfig(t)
	cfg.EncryptionKey = "not-a-key"

	app, err := NewApp(cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "encryption key error")
}

func TestNewApp_MigrationFailure(t *testing.T) {
	cfg := testConfig(t)
	// a database file in a directory that does not exist
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "missing", "nested", "shop.db")

	app, err := NewApp(cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "migration error")
}

func TestNewApp_MigratesAndSeeds(t *testing.T) {
	cfg := testConfig(t)

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app)
	defer app.db.Close()

	var count int
	require.NoError(t, app.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count))
	assert.Greater(t, count, 0)
}
