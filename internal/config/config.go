// Package config loads runtime configuration from flags, environment, .env
// files and an optional sukoon.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	LLM       LLMConfig
	Chat      ChatConfig
	RAG       RAGConfig
	Store     StoreConfig
	Embedding EmbeddingConfig
}

type LLMConfig struct {
	Provider    string
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type ChatConfig struct {
	HistoryWindow int
}

type RAGConfig struct {
	Enabled      bool
	TopK         int
	Timeout      time.Duration
	Collection   string
	KnowledgeDir string
}

type StoreConfig struct {
	Path string
}

type EmbeddingConfig struct {
	Provider    string
	Fallback    string
	Model       string
	BaseURL     string
	APIKey      string
	OllamaModel string
	Dims        int
	Timeout     time.Duration
}

var (
	validLLMProviders       = map[string]bool{"openai": true, "anthropic": true, "gemini": true}
	validEmbeddingProviders = map[string]bool{"openai": true, "ollama": true, "hash": true}
	validFallbacks          = map[string]bool{"ollama": true, "hash": true, "none": true}
)

// providerKeyEnv lists, per completion provider, the conventional env vars
// consulted when llm.api_key is unset.
var providerKeyEnv = map[string][]string{
	"openai":    {"GROQ_API_KEY", "OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
	"gemini":    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

// defaultModels is used when llm.model is unset.
var defaultModels = map[string]string{
	"openai":    "llama-3.3-70b-versatile",
	"anthropic": "claude-3-5-haiku-latest",
	"gemini":    "gemini-2.0-flash",
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.max_tokens", 600)
	v.SetDefault("llm.temperature", 0.8)
	v.SetDefault("llm.timeout", 30*time.Second)

	v.SetDefault("chat.history_window", 6)

	v.SetDefault("rag.enabled", true)
	v.SetDefault("rag.top_k", 2)
	v.SetDefault("rag.timeout", 10*time.Second)
	v.SetDefault("rag.collection", "sukoon_wisdom")
	v.SetDefault("rag.knowledge_dir", "./knowledge_base")

	v.SetDefault("store.path", filepath.Join(home, ".sukoon", "vectors.db"))

	v.SetDefault("embedding.provider", "openai")
	v.SetDefault("embedding.fallback", "hash")
	v.SetDefault("embedding.model", "text-embedding-3-small")
	v.SetDefault("embedding.base_url", "https://api.openai.com/v1")
	v.SetDefault("embedding.ollama_model", "nomic-embed-text")
	v.SetDefault("embedding.dims", 384)
	v.SetDefault("embedding.timeout", 15*time.Second)
}

// New returns a viper instance with defaults, env binding and the optional
// config file applied. Callers may bind flags onto it before calling Load.
func New(configFile string) (*viper.Viper, error) {
	// .env never overrides variables already present in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SUKOON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("sukoon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".sukoon"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			BaseURL:     v.GetString("llm.base_url"),
			APIKey:      v.GetString("llm.api_key"),
			Model:       v.GetString("llm.model"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     v.GetDuration("llm.timeout"),
		},
		Chat: ChatConfig{
			HistoryWindow: v.GetInt("chat.history_window"),
		},
		RAG: RAGConfig{
			Enabled:      v.GetBool("rag.enabled"),
			TopK:         v.GetInt("rag.top_k"),
			Timeout:      v.GetDuration("rag.timeout"),
			Collection:   v.GetString("rag.collection"),
			KnowledgeDir: v.GetString("rag.knowledge_dir"),
		},
		Store: StoreConfig{
			Path: expandHome(v.GetString("store.path")),
		},
		Embedding: EmbeddingConfig{
			Provider:    strings.ToLower(v.GetString("embedding.provider")),
			Fallback:    strings.ToLower(v.GetString("embedding.fallback")),
			Model:       v.GetString("embedding.model"),
			BaseURL:     v.GetString("embedding.base_url"),
			APIKey:      v.GetString("embedding.api_key"),
			OllamaModel: v.GetString("embedding.ollama_model"),
			Dims:        v.GetInt("embedding.dims"),
			Timeout:     v.GetDuration("embedding.timeout"),
		},
	}

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = firstEnv(providerKeyEnv[cfg.LLM.Provider]...)
	}
	if cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural correctness. Missing credentials are not an
// error here: the conversation layer reports them to the user.
func (c *Config) Validate() error {
	if !validLLMProviders[c.LLM.Provider] {
		return fmt.Errorf("unknown llm.provider %q (want openai, anthropic or gemini)", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.max_tokens must be > 0")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be within [0, 2]")
	}
	if c.Chat.HistoryWindow <= 0 {
		return errors.New("chat.history_window must be > 0")
	}
	if c.RAG.TopK <= 0 {
		return errors.New("rag.top_k must be > 0")
	}
	if c.RAG.Collection == "" {
		return errors.New("rag.collection is required")
	}
	if !validEmbeddingProviders[c.Embedding.Provider] {
		return fmt.Errorf("unknown embedding.provider %q", c.Embedding.Provider)
	}
	if !validFallbacks[c.Embedding.Fallback] {
		return fmt.Errorf("unknown embedding.fallback %q", c.Embedding.Fallback)
	}
	if c.Embedding.Dims <= 0 {
		return errors.New("embedding.dims must be > 0")
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
