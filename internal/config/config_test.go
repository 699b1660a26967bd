package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "011090", cfg.AdminAccessCode)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "@every 5m", cfg.StatsCron)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg := LoadConfig()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestConnectDB_Validation(t *testing.T) {
	_, err := ConnectDB(&Config{DBDriver: "postgres"})
	assert.Error(t, err)

	_, err = ConnectDB(&Config{DBDriver: "sqlite", DBDSN: "file.db"})
	assert.ErrorContains(t, err, "DB_DRIVER tidak dikenal")
}

func TestNewStore_FallsBackToMemory(t *testing.T) {
	st, closeFn := NewStore(&Config{})
	assert.NotNil(t, st)
	assert.NoError(t, closeFn())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		secret  string
		wantErr bool
	}{
		{"release dengan secret bawaan", "release", DefaultJWTSecret, true},
		{"release tanpa secret", "release", "", true},
		{"release dengan secret sendiri", "release", "rahasia-produksi", false},
		{"debug boleh secret bawaan", "debug", DefaultJWTSecret, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Config{GinMode: tt.mode, JWTSecret: tt.secret}).Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadConfig_DefaultSecretFailsValidation(t *testing.T) {
	// env kosong diabaikan viper, jadi nilai bawaan yang dipakai
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GIN_MODE", "")

	cfg := LoadConfig()
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Error(t, cfg.Validate(), "GIN_MODE bawaan release")
}
