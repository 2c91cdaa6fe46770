package app

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"

	"github.com/keyward/principald/pkg/jwtx"
	"github.com/keyward/principald/pkg/keyring"
)

// initKeyring selects the tenant key provider. A configured remote key
// service wins; otherwise a master key file feeds the local HKDF provider.
// With neither, a random ephemeral master key is generated so development
// setups work out of the box, at the cost of losing stored secrets on
// restart.
func initKeyring(cfg Config, logger *slog.Logger) (keyring.Provider, error) {
	if cfg.KeyServiceURL != "" {
		var opts []keyring.RemoteOption
		if cfg.KeyServiceToken != "" {
			opts = append(opts, keyring.WithBearerToken(cfg.KeyServiceToken))
		}
		provider, err := keyring.NewRemoteProvider(cfg.KeyServiceURL, opts...)
		if err != nil {
			return nil, fmt.Errorf("init remote keyring: %w", err)
		}
		logger.Info("using remote key service", "url", cfg.KeyServiceURL)
		return provider, nil
	}

	if cfg.MasterKeyFile != "" {
		provider, err := keyring.NewLocalProviderFromFile(cfg.MasterKeyFile)
		if err != nil {
			return nil, fmt.Errorf("init local keyring: %w", err)
		}
		logger.Info("using local keyring", "master_key_file", cfg.MasterKeyFile)
		return provider, nil
	}

	master := make([]byte, keyring.KeySize)
	if _, err := rand.Read(master); err != nil {
		return nil, fmt.Errorf("generate ephemeral master key: %w", err)
	}
	provider, err := keyring.NewLocalProvider(master)
	if err != nil {
		return nil, fmt.Errorf("init ephemeral keyring: %w", err)
	}
	logger.Warn("no master key configured, using ephemeral keyring; stored secrets will not survive a restart")
	return provider, nil
}

// initSigner loads the process-wide session signing key, or generates an
// ephemeral one when none is configured.
func initSigner(cfg Config, logger *slog.Logger) (*jwtx.Signer, error) {
	if cfg.SigningKeyFile != "" {
		pemKey, err := os.ReadFile(cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read signing key file: %w", err)
		}
		signer, err := jwtx.NewSigner(cfg.SigningKeyID, pemKey)
		if err != nil {
			return nil, fmt.Errorf("parse signing key: %w", err)
		}
		logger.Info("loaded signing key", "kid", signer.KID())
		return signer, nil
	}

	signer, err := jwtx.NewEphemeralSigner()
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral signing key: %w", err)
	}
	logger.Warn("no signing key configured, using ephemeral keypair; outstanding sessions will not survive a restart", "kid", signer.KID())
	return signer, nil
}
