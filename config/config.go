package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"port"`
	StoreBackend      string   `mapstructure:"store_backend"` // "file" or "mongo"
	DataDir           string   `mapstructure:"data_dir"`
	MongoURI          string   `mapstructure:"MONGODB_URI"`
	MongoDatabase     string   `mapstructure:"mongo_database"`
	AIBackend         string   `mapstructure:"ai_backend"` // "openai" or "gemini"
	AIEndpoint        string   `mapstructure:"ai_endpoint"`
	Model             string   `mapstructure:"model"`
	OpenAIAPIKey      string   `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys     []string `mapstructure:"GEMINI_API_KEYS"`
	CompletionTimeout int      `mapstructure:"completion_timeout"` // seconds
	RecognizedSources []string `mapstructure:"recognized_sources"`
	AdminPassword     string   `mapstructure:"ADMIN_PASSWORD"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("store_backend", "file")
	v.SetDefault("data_dir", ".tmp")
	v.SetDefault("mongo_database", "docusage")
	v.SetDefault("ai_backend", "openai")
	v.SetDefault("completion_timeout", 60)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")
	v.BindEnv("MONGODB_URI")
	v.BindEnv("ADMIN_PASSWORD")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func (c *Config) CompletionTimeoutDuration() time.Duration {
	return time.Duration(c.CompletionTimeout) * time.Second
}
