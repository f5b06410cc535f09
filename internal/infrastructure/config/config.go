package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "ORCAFACIL"

// Storage backends selectable via ORCAFACIL_STORAGE_BACKEND.
const (
	BackendLocal    = "local"
	BackendDynamoDB = "dynamodb"
	BackendAPI      = "api"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	JWT     JWTConfig
	API     APIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"ORCAFACIL_APP_ENV" default:"dev"`
	Port     string `envconfig:"ORCAFACIL_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"ORCAFACIL_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type StorageConfig struct {
	Backend string `envconfig:"ORCAFACIL_STORAGE_BACKEND" default:"local"`
	DataDir string `envconfig:"ORCAFACIL_DATA_DIR" default:"./data"`
}

func (s *StorageConfig) validate() error {
	backend := strings.TrimSpace(strings.ToLower(s.Backend))
	switch backend {
	case BackendLocal, BackendDynamoDB, BackendAPI:
		s.Backend = backend
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (expected local, dynamodb or api)", s.Backend)
	}
}

type JWTConfig struct {
	Secret     string `envconfig:"ORCAFACIL_JWT_SECRET" default:"dev-secret"`
	TTLMinutes int    `envconfig:"ORCAFACIL_JWT_TTL_MINUTES" default:"1440"`
}

// TTL returns the token lifetime configured in minutes.
func (j JWTConfig) TTL() time.Duration {
	if j.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.TTLMinutes) * time.Minute
}

// APIConfig configures the remote backend used when Storage.Backend is "api".
type APIConfig struct {
	BaseURL string `envconfig:"ORCAFACIL_API_BASE_URL"`
	Token   string `envconfig:"ORCAFACIL_API_TOKEN"`
}
