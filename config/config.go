package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant core
	Assistant    AssistantConfig
	Memory       MemoryConfig
	Conversation ConversationConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Reporting and events
	Report ReportConfig
	Kafka  KafkaConfig

	// Operator surface
	Admin AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig configures message handling.
type AssistantConfig struct {
	SettingsDir     string
	WatchSettings   bool
	SemanticTimeout time.Duration
	LLMTimeout      time.Duration
	ReplyTimeout    time.Duration
	SessionTTL      time.Duration
	HistoryLimit    int
}

// MemoryConfig configures the memory store.
type MemoryConfig struct {
	Dir             string
	Timezone        string
	MaxWriteRetries int
}

// ConversationConfig configures the conversation log.
type ConversationConfig struct {
	DSN string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers          []ProviderConfig `yaml:"providers"`
	EmbeddingProviders []ProviderConfig `yaml:"embedding_providers"`
	FallbackEnabled    bool             `yaml:"fallback_enabled"`
	RetryAttempts      int              `yaml:"retry_attempts"`
	RetryDelay         string           `yaml:"retry_delay"`
	MaxTotalTimeout    string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name            string `yaml:"name"`
	Enabled         bool   `yaml:"enabled"`
	Priority        int    `yaml:"priority"`
	APIKey          string `yaml:"api_key"`
	BaseURL         string `yaml:"base_url,omitempty"`
	Model           string `yaml:"model"`
	EmbeddingModel  string `yaml:"embedding_model,omitempty"`
	Timeout         string `yaml:"timeout"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
}

// ReportConfig configures the daily operations report.
type ReportConfig struct {
	Enabled    bool
	Schedule   string
	Timezone   string
	Dir        string
	WebhookURL string
	Telegram   TelegramConfig
}

type TelegramConfig struct {
	BotToken string
	ChatIDs  []int64
	APIURL   string
}

// KafkaConfig configures the classification event stream.
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

// AdminConfig guards the operator routes.
type AdminConfig struct {
	InternalKey     string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/pelangi/
func Load() (*Config, error) {
	// A local .env only fills variables the environment does not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/pelangi/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant core
	cfg.Assistant.SettingsDir = viper.GetString("assistant.settings_dir")
	cfg.Assistant.WatchSettings = viper.GetBool("assistant.watch_settings")
	cfg.Assistant.SemanticTimeout = viper.GetDuration("assistant.semantic_timeout")
	cfg.Assistant.LLMTimeout = viper.GetDuration("assistant.llm_timeout")
	cfg.Assistant.ReplyTimeout = viper.GetDuration("assistant.reply_timeout")
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.HistoryLimit = viper.GetInt("assistant.history_limit")

	cfg.Memory.Dir = viper.GetString("memory.dir")
	cfg.Memory.Timezone = viper.GetString("memory.timezone")
	cfg.Memory.MaxWriteRetries = viper.GetInt("memory.max_write_retries")

	cfg.Conversation.DSN = viper.GetString("conversation.dsn")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders("llm.providers")
	cfg.LLM.EmbeddingProviders = loadProviders("llm.embedding_providers")

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Report
	cfg.Report.Enabled = viper.GetBool("report.enabled")
	cfg.Report.Schedule = viper.GetString("report.schedule")
	cfg.Report.Timezone = viper.GetString("report.timezone")
	cfg.Report.Dir = viper.GetString("report.dir")
	cfg.Report.WebhookURL = expandEnvVar(viper.GetString("report.webhook_url"))
	cfg.Report.Telegram.BotToken = expandEnvVar(viper.GetString("report.telegram.bot_token"))
	cfg.Report.Telegram.APIURL = viper.GetString("report.telegram.api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Report.Telegram.BotToken = tgToken
	}
	for _, raw := range getList("report.telegram.chat_ids") {
		var id int64
		if _, err := fmt.Sscan(raw, &id); err != nil {
			return nil, fmt.Errorf("report.telegram.chat_ids: invalid chat id %q", raw)
		}
		cfg.Report.Telegram.ChatIDs = append(cfg.Report.Telegram.ChatIDs, id)
	}

	// Kafka
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = getList("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Admin
	cfg.Admin.InternalKey = expandEnvVar(viper.GetString("admin.internal_key"))
	if key := viper.GetString("admin_internal_key"); key != "" {
		cfg.Admin.InternalKey = key
	}
	cfg.Admin.RateLimitPerMin = viper.GetInt("admin.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.settings_dir", "./settings")
	viper.SetDefault("assistant.watch_settings", true)
	viper.SetDefault("assistant.semantic_timeout", "3s")
	viper.SetDefault("assistant.llm_timeout", "8s")
	viper.SetDefault("assistant.reply_timeout", "30s")
	viper.SetDefault("assistant.session_ttl", "0s")
	viper.SetDefault("assistant.history_limit", 20)

	viper.SetDefault("memory.dir", "./data/memory")
	viper.SetDefault("memory.timezone", "Asia/Kuala_Lumpur")
	viper.SetDefault("memory.max_write_retries", 3)

	viper.SetDefault("conversation.dsn", "./data/conversations.db")

	viper.SetDefault("report.schedule", "0 9 * * *")
	viper.SetDefault("report.timezone", "Asia/Kuala_Lumpur")
	viper.SetDefault("report.dir", "./data/reports")

	viper.SetDefault("kafka.topic", "assistant.events")
	viper.SetDefault("kafka.group_id", "pelangi-assistant-consumer")

	viper.SetDefault("admin.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

func loadProviders(key string) []ProviderConfig {
	if !viper.IsSet(key) {
		return nil
	}
	providersList, ok := viper.Get(key).([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:            getStringFromMap(providerMap, "name"),
			Enabled:         getBoolFromMap(providerMap, "enabled"),
			Priority:        getIntFromMap(providerMap, "priority"),
			APIKey:          expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:         getStringFromMap(providerMap, "base_url"),
			Model:           getStringFromMap(providerMap, "model"),
			EmbeddingModel:  getStringFromMap(providerMap, "embedding_model"),
			Timeout:         getStringFromMap(providerMap, "timeout"),
			RateLimitPerMin: getIntFromMap(providerMap, "rate_limit_per_min"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// getList reads a YAML list or a comma separated string, the latter being how
// lists arrive from the environment.
func getList(key string) []string {
	switch v := viper.Get(key).(type) {
	case string:
		return splitList(v)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, strings.TrimSpace(fmt.Sprint(item)))
		}
		return out
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
