package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jpanesar/sscreen/internal/screen"
)

type HostConfig struct {
	Host   string `yaml:"host"`
	User   string `yaml:"user"`
	SSHKey string `yaml:"ssh_key"`
}

type Config struct {
	DefaultSession string                `yaml:"default_session"`
	ScreenBin      string                `yaml:"screen_bin"`
	Hosts          map[string]HostConfig `yaml:"hosts"`
}

// Load reads the config from ~/.config/sscreen/config.yaml.
// Returns defaults if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaults(), nil
	}

	path := filepath.Join(home, ".config", "sscreen", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// Expand ~ in ssh_key
	for name, h := range cfg.Hosts {
		if len(h.SSHKey) > 0 && h.SSHKey[0] == '~' {
			h.SSHKey = filepath.Join(home, h.SSHKey[1:])
		}
		cfg.Hosts[name] = h
	}

	return cfg, nil
}

// Parse decodes raw YAML, filling in defaults for anything unset.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.DefaultSession == "" {
		cfg.DefaultSession = screen.DefaultSessionName
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{DefaultSession: screen.DefaultSessionName}
}
