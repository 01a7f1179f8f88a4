package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	if cfg.Redis.Prefix == "" {
		cfg.Redis.Prefix = "storefront:"
	}
	if cfg.Server.Bind.Port == 0 {
		cfg.Server.Bind.Port = 8080
	}
	if cfg.Server.Session.TTLSec == 0 {
		cfg.Server.Session.TTLSec = 86400
	}
	if cfg.Server.Session.SecretRef == "" {
		return nil, fmt.Errorf("server.session.secret_ref must be set")
	}

	return &cfg, nil
}

// Resolve "env:XXX" to actual secret.
func ResolveSecret(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty secret_ref")
	}
	if strings.HasPrefix(ref, "env:") {
		key := strings.TrimPrefix(ref, "env:")
		v := os.Getenv(key)
		if v == "" {
			return "", fmt.Errorf("env %s is empty", key)
		}
		return v, nil
	}
	// future extension: file:/path, vault:..., kms:...
	return ref, nil
}
