package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret hanya untuk lokal; mode release wajib mengganti JWT_SECRET
const DefaultJWTSecret = "smartcare-admin-secret"

// Config berisi semua pengaturan runtime dari environment / file .env
type Config struct {
	AppName  string
	Port     string
	GinMode  string
	LogLevel string

	DBDriver      string
	DBDSN         string
	DBAutoMigrate bool

	AdminAccessCode string
	JWTSecret       string
	SessionTTL      time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers     []string
	KafkaTopicPrefix string

	FirebaseCredentials string

	MidtransServerKey string
	MidtransEnv       string

	StatsCron string

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig membaca .env (kalau ada) lalu environment lewat viper
func LoadConfig() *Config {
	// .env opsional, di production variabel datang dari environment
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_NAME", "smartcare-admin")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("ADMIN_ACCESS_CODE", "011090")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("SESSION_TTL", "8h")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_TOPIC_PREFIX", "smartcare.")
	v.SetDefault("MIDTRANS_ENV", "sandbox")
	v.SetDefault("STATS_CRON", "@every 5m")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	return &Config{
		AppName:  v.GetString("APP_NAME"),
		Port:     v.GetString("PORT"),
		GinMode:  v.GetString("GIN_MODE"),
		LogLevel: v.GetString("LOG_LEVEL"),

		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:         v.GetString("DB_DSN"),
		DBAutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),

		AdminAccessCode: v.GetString("ADMIN_ACCESS_CODE"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		SessionTTL:      v.GetDuration("SESSION_TTL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		KafkaBrokers:     splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopicPrefix: v.GetString("KAFKA_TOPIC_PREFIX"),

		FirebaseCredentials: v.GetString("FIREBASE_CREDENTIALS"),

		MidtransServerKey: v.GetString("MIDTRANS_SERVER_KEY"),
		MidtransEnv:       v.GetString("MIDTRANS_ENV"),

		StatsCron: v.GetString("STATS_CRON"),

		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}
}

// Validate menolak konfigurasi yang tidak aman untuk dijalankan.
// Di mode release, secret bawaan berarti siapa saja bisa memalsukan token sesi.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET tidak boleh kosong")
	}
	if c.GinMode == "release" && c.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET masih bawaan, set JWT_SECRET sebelum jalan di mode release")
	}
	return nil
}

// splitList memecah "a:9092, b:9092" jadi slice, mengabaikan item kosong
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
