package config

import (
	"fmt"
	"os"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

type ProviderConfig struct {
	ClientID     string `yaml:"clientID"`
	ClientSecret string `yaml:"clientSecret"`
	CallbackURL  string `yaml:"callbackURL"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	FrontendURL string `yaml:"frontendURL"`
	Production  bool   `yaml:"production"`

	Session struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttlHours"`
	} `yaml:"session"`

	OAuth struct {
		Google   ProviderConfig `yaml:"google"`
		Facebook ProviderConfig `yaml:"facebook"`
	} `yaml:"oauth"`

	AI struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`
}

// Load reads the yaml config file, then lets the environment override
// every secret and URL. A missing file is fine: defaults plus
// environment carry a dev setup. A .env file is folded into the
// environment first.
func Load(path string) (*Config, error) {
	_ = gotenv.Load()

	cfg := defaults()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 3000
	cfg.FrontendURL = "http://localhost:3001"
	cfg.Session.Secret = "supersecret"
	cfg.Session.TTLHours = 24
	cfg.OAuth.Google.CallbackURL = "http://localhost:3000/auth/google/callback"
	cfg.OAuth.Facebook.CallbackURL = "http://localhost:3000/auth/facebook/callback"
	return cfg
}

func applyEnv(cfg *Config) {
	setString(&cfg.FrontendURL, "FRONTEND_URL")
	setString(&cfg.Session.Secret, "SESSION_SECRET")
	setString(&cfg.OAuth.Google.ClientID, "GOOGLE_CLIENT_ID")
	setString(&cfg.OAuth.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setString(&cfg.OAuth.Google.CallbackURL, "GOOGLE_CALLBACK_URL")
	setString(&cfg.OAuth.Facebook.ClientID, "FACEBOOK_CLIENT_ID")
	setString(&cfg.OAuth.Facebook.ClientSecret, "FACEBOOK_CLIENT_SECRET")
	setString(&cfg.OAuth.Facebook.CallbackURL, "FACEBOOK_CALLBACK_URL")
	setString(&cfg.AI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.AI.Model, "OPENAI_MODEL")

	if v := os.Getenv("APP_ENV"); v == "production" {
		cfg.Production = true
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
