package config

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultDBName = "employee-management-db"

// ServiceAccount is the decoded form of STORE_SERVICE_ACCOUNT_BASE64.
type ServiceAccount struct {
	ConnectionURI string `json:"connection_uri"`
	Database      string `json:"database"`
}

type AppConfig struct {
	Port           string
	ServiceAccount ServiceAccount
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

var ErrMissingServiceAccount = errors.New("STORE_SERVICE_ACCOUNT_BASE64 is not set")

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(requireStore bool) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded (might not exist in production): %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	return Load(v, requireStore)
}

// Load builds an AppConfig from v. With requireStore unset a missing service
// account is tolerated, which is what the in-memory server mode wants.
func Load(v *viper.Viper, requireStore bool) (*AppConfig, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "5s")

	cfg := &AppConfig{
		Port:           v.GetString("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 5 * time.Second
	}

	encoded := strings.TrimSpace(v.GetString("STORE_SERVICE_ACCOUNT_BASE64"))
	if encoded == "" {
		if requireStore {
			return nil, ErrMissingServiceAccount
		}
		return cfg, nil
	}

	sa, err := DecodeServiceAccount(encoded)
	if err != nil {
		return nil, err
	}
	cfg.ServiceAccount = sa
	return cfg, nil
}

// DecodeServiceAccount accepts standard or URL-safe base64, padded or not.
func DecodeServiceAccount(encoded string) (ServiceAccount, error) {
	var sa ServiceAccount

	var raw []byte
	var err error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if raw, err = enc.DecodeString(encoded); err == nil {
			break
		}
	}
	if err != nil {
		return sa, fmt.Errorf("STORE_SERVICE_ACCOUNT_BASE64 is not valid base64: %w", err)
	}

	if err := json.Unmarshal(raw, &sa); err != nil {
		return sa, fmt.Errorf("STORE_SERVICE_ACCOUNT_BASE64 does not hold a JSON service account: %w", err)
	}
	if strings.TrimSpace(sa.ConnectionURI) == "" {
		return sa, errors.New("service account has no connection_uri")
	}
	if strings.TrimSpace(sa.Database) == "" {
		sa.Database = DefaultDBName
	}
	return sa, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
