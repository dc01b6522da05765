package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"

	DefaultTokenTTL          = 24 * time.Hour
	DefaultTopK              = 3
	DefaultHistoryLimit      = 20
	DefaultMaxFeedbackTokens = 1500
	DefaultEmbeddingDims     = 768
	DefaultCollection        = "resume-tips"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// StaticDir serves the browser client for every path outside /api. Empty disables it.
		StaticDir string `json:"staticDir" yaml:"staticDir"`
		// AllowOrigins lists CORS origins. Empty allows any origin.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	AI *AIConfig `json:"ai" yaml:"ai"`

	Vector *VectorConfig `json:"vector" yaml:"vector"`

	Tips *TipsConfig `json:"tips" yaml:"tips"`

	History *HistoryConfig `json:"history" yaml:"history"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for analysis event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	Scrypt   ScryptConfig  `json:"scrypt" yaml:"scrypt"`
}

// ScryptConfig holds the key derivation parameters used for new password hashes.
type ScryptConfig struct {
	N       int `json:"n" yaml:"n"`
	R       int `json:"r" yaml:"r"`
	P       int `json:"p" yaml:"p"`
	KeyLen  int `json:"keyLen" yaml:"keyLen"`
	SaltLen int `json:"saltLen" yaml:"saltLen"`
}

// AIConfig selects the inference provider and its models
type AIConfig struct {
	// Provider type: "genai" for Gemini or "openai" for any OpenAI compatible endpoint
	Provider string `json:"provider" yaml:"provider"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	BaseURL  string `json:"baseUrl" yaml:"baseUrl"`

	ModerationModel string `json:"moderationModel" yaml:"moderationModel"`
	GenerationModel string `json:"generationModel" yaml:"generationModel"`
	EmbeddingModel  string `json:"embeddingModel" yaml:"embeddingModel"`

	EmbeddingDimensions int `json:"embeddingDimensions" yaml:"embeddingDimensions"`
	MaxFeedbackTokens   int `json:"maxFeedbackTokens" yaml:"maxFeedbackTokens"`

	// ModerationRetries is how many extra attempts are made when the verdict cannot be parsed
	ModerationRetries int `json:"moderationRetries" yaml:"moderationRetries"`

	Timeouts struct {
		Moderation time.Duration `json:"moderation" yaml:"moderation"`
		Embedding  time.Duration `json:"embedding" yaml:"embedding"`
		Query      time.Duration `json:"query" yaml:"query"`
		Generation time.Duration `json:"generation" yaml:"generation"`
	} `json:"timeouts" yaml:"timeouts"`
}

// VectorConfig defines the nearest-neighbour index holding curated tips
type VectorConfig struct {
	// Provider type: "chromem" for the embedded store or "qdrant" for a Qdrant server
	Provider   string `json:"provider" yaml:"provider"`
	Collection string `json:"collection" yaml:"collection"`
	TopK       int    `json:"topK" yaml:"topK"`

	Chromem struct {
		// Path of the persistence directory. Empty keeps the index in memory.
		Path     string `json:"path" yaml:"path"`
		Compress bool   `json:"compress" yaml:"compress"`
	} `json:"chromem" yaml:"chromem"`

	Qdrant struct {
		Host   string `json:"host" yaml:"host"`
		Port   int    `json:"port" yaml:"port"`
		UseTLS bool   `json:"useTLS" yaml:"useTLS"`
		APIKey string `json:"apiKey" yaml:"apiKey"`
	} `json:"qdrant" yaml:"qdrant"`
}

// TipsConfig locates the curated tip corpus used to seed the vector index
type TipsConfig struct {
	// BucketURL is a gocloud blob URL, e.g. file:///srv/tips or mem://
	BucketURL   string `json:"bucketUrl" yaml:"bucketUrl"`
	Key         string `json:"key" yaml:"key"`
	SeedOnStart bool   `json:"seedOnStart" yaml:"seedOnStart"`
}

// HistoryConfig defines analysis history listing limits
type HistoryConfig struct {
	Limit int `json:"limit" yaml:"limit"`
}

// RateLimitConfig throttles the credential endpoints per client IP
type RateLimitConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Burst   int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig toggles the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: AI_GENERATIONMODEL -> ai.generationModel
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills zero values and rejects configurations the server cannot run with.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be set")
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = DefaultTokenTTL
	}

	if cfg.AI == nil {
		cfg.AI = &AIConfig{}
	}
	if cfg.AI.MaxFeedbackTokens <= 0 {
		cfg.AI.MaxFeedbackTokens = DefaultMaxFeedbackTokens
	}
	if cfg.AI.EmbeddingDimensions <= 0 {
		cfg.AI.EmbeddingDimensions = DefaultEmbeddingDims
	}
	if cfg.AI.ModerationRetries < 0 {
		cfg.AI.ModerationRetries = 0
	}

	if cfg.Vector == nil {
		cfg.Vector = &VectorConfig{}
	}
	if cfg.Vector.TopK <= 0 {
		cfg.Vector.TopK = DefaultTopK
	}
	if cfg.Vector.Collection == "" {
		cfg.Vector.Collection = DefaultCollection
	}

	if cfg.History == nil {
		cfg.History = &HistoryConfig{}
	}
	if cfg.History.Limit <= 0 || cfg.History.Limit > DefaultHistoryLimit {
		cfg.History.Limit = DefaultHistoryLimit
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
