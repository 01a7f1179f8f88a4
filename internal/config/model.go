package config

type Config struct {
	Server Server `yaml:"server"`
	Redis  Redis  `yaml:"redis"`
}

type Server struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Bind    struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"bind"`
	Audit struct {
		Enabled   bool   `yaml:"enabled"`
		SecretRef string `yaml:"secret_ref"`
	} `yaml:"audit"`
	Session struct {
		SecretRef string `yaml:"secret_ref"`
		TTLSec    int    `yaml:"ttl_sec"`
	} `yaml:"session"`
}

type Redis struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	DB      int    `yaml:"db"`
	Prefix  string `yaml:"prefix"`
	TLS     bool   `yaml:"tls"`
	AuthRef string `yaml:"auth_ref"`
}
