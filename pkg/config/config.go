package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Personas struct {
		Dir     string `yaml:"dir"`
		Default string `yaml:"default"`
	} `yaml:"personas"`
	Session struct {
		TTLHours    int    `yaml:"ttl_hours"`
		RedisPrefix string `yaml:"redis_prefix"`
	} `yaml:"session"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		// Set default values
		applyDefaults(config)
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Personas.Dir == "" {
		config.Personas.Dir = "personas"
	}
	if config.Personas.Default == "" {
		config.Personas.Default = "bonnie"
	}
	if config.Session.TTLHours <= 0 {
		config.Session.TTLHours = 168
	}
	if config.Session.RedisPrefix == "" {
		config.Session.RedisPrefix = "galatea"
	}
}
