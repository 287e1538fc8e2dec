package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Bot modes selecting the active response strategy.
const (
	ModeRules = "rules"
	ModeLLM   = "llm"
)

const defaultSystemPrompt = "You are a helpful and polite hospital helpline assistant. " +
	"Your job is to answer questions about hospital services, " +
	"appointments, visiting hours, and departments. " +
	"If the user describes a medical emergency, immediately tell them " +
	"to call 108 or visit the nearest emergency room. " +
	"Always remind users that you are not a doctor and cannot give " +
	"professional medical advice."

// Config holds the application configuration
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Bot    BotConfig
	Log    LogConfig
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LLMConfig holds the completion-service configuration
type LLMConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	APIKey       string `mapstructure:"api_key"`
	Model        string `mapstructure:"model"`
	SystemPrompt string `mapstructure:"system_prompt"`
}

// BotConfig selects the response strategy.
type BotConfig struct {
	Mode string `mapstructure:"mode"`
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from config.yaml (or the file named by
// CONFIG_PATH), with environment variables taking precedence over file
// values. A missing config file is fine; defaults plus environment are
// enough to start the server.
func Load() (*Config, error) {
	_ = godotenv.Load() // best-effort .env load

	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.system_prompt", defaultSystemPrompt)
	v.SetDefault("bot.mode", ModeRules)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional variable names used by the OpenAI SDK and deploy targets.
	_ = v.BindEnv("llm.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.model", "OPENAI_MODEL")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("bot.mode", "BOT_MODE")

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
