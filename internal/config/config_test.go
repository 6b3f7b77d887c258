package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORDER_STORE", "")
	t.Setenv("UPLOAD_MAX_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, "/customDesigns", cfg.Upload.PublicPath)
	assert.False(t, cfg.UseS3())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORDER_STORE", "Postgres")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("RATE_LIMIT_ENABLED", "FALSE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage:  StorageConfig{Driver: StorageDriverFile, OrdersFile: "orders.json"},
			Upload:   UploadConfig{MaxSize: 1, PublicPath: "/u"},
			Database: DatabaseConfig{Database: "shop"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, "unknown ORDER_STORE"},
		{"file without path", func(c *Config) { c.Storage.OrdersFile = "" }, "ORDERS_FILE"},
		{"postgres without db", func(c *Config) {
			c.Storage.Driver = StorageDriverPostgres
			c.Database.Database = ""
		}, "DB_NAME"},
		{"postgres prod without password", func(c *Config) {
			c.Storage.Driver = StorageDriverPostgres
			c.Environment = "production"
		}, "password"},
		{"zero upload size", func(c *Config) { c.Upload.MaxSize = 0 }, "UPLOAD_MAX_SIZE"},
		{"relative public path", func(c *Config) { c.Upload.PublicPath = "uploads" }, "UPLOAD_PUBLIC_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
