package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	SSL      bool
}

type AdminConfig struct {
	Email    string
	Password string
	Token    string
}

type UploadConfig struct {
	Dir     string
	BaseURL string
	MaxMB   int
}

type CodeConfig struct {
	Length     int
	TTLMinutes int
}

func (c CodeConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type Config struct {
	Env    string
	Port   string
	DBURL  string
	Codes  CodeConfig
	SMTP   SMTPConfig
	Admin  AdminConfig
	Upload UploadConfig
}

// Load reads configuration from the environment. DB_URL and ADMIN_TOKEN are
// required; everything else has a sensible default.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CODE_LENGTH", 6)
	v.SetDefault("CODE_TTL_MINUTES", 15)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_SSL", true)
	v.SetDefault("UPLOAD_DIR", "wwwroot/uploads")
	v.SetDefault("UPLOAD_BASE_URL", "/uploads")
	v.SetDefault("MAX_UPLOAD_MB", 200)

	for _, key := range []string{"DB_URL", "ADMIN_TOKEN"} {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("missing required environment variable %s", key)
		}
	}

	cfg := &Config{
		Env:   v.GetString("ENV"),
		Port:  v.GetString("PORT"),
		DBURL: v.GetString("DB_URL"),
		Codes: CodeConfig{
			Length:     v.GetInt("CODE_LENGTH"),
			TTLMinutes: v.GetInt("CODE_TTL_MINUTES"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
			SSL:      v.GetBool("SMTP_SSL"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
			Token:    v.GetString("ADMIN_TOKEN"),
		},
		Upload: UploadConfig{
			Dir:     v.GetString("UPLOAD_DIR"),
			BaseURL: v.GetString("UPLOAD_BASE_URL"),
			MaxMB:   v.GetInt("MAX_UPLOAD_MB"),
		},
	}

	return cfg, nil
}
