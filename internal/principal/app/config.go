package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer string `env:"PRINCIPALD_ISSUER" envDefault:"principald"`

	DatabaseFile string `env:"PRINCIPALD_DATABASE_FILE" envDefault:"principald.db"`

	// Master key file for the local HKDF keyring. Ignored when a remote key
	// service is configured. When neither is set the keyring falls back to an
	// ephemeral master key, which makes stored secrets unreadable after a
	// restart and is only suitable for development.
	MasterKeyFile   string `env:"PRINCIPALD_MASTER_KEY_FILE"`
	KeyServiceURL   string `env:"PRINCIPALD_KEY_SERVICE_URL"`
	KeyServiceToken string `env:"PRINCIPALD_KEY_SERVICE_TOKEN,unset"`

	// SigningKeyFile holds an Ed25519 private key in PEM (PKCS8) form. When
	// empty an ephemeral keypair is generated at startup.
	SigningKeyFile string `env:"PRINCIPALD_SIGNING_KEY_FILE"`
	SigningKeyID   string `env:"PRINCIPALD_SIGNING_KEY_ID" envDefault:"primary"`

	SessionTTL time.Duration `env:"PRINCIPALD_SESSION_TTL" envDefault:"8h"`
	AccessTTL  time.Duration `env:"PRINCIPALD_ACCESS_TTL" envDefault:"15m"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
