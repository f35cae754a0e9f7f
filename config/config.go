package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultPollInterval       = 2 * time.Second
	defaultMaxUploadSize      = 10 << 20
	defaultReconcileSchedule  = "@every 5m"
	defaultReconcileBatchSize = 50
	defaultNotificationItems  = 100
	defaultAuthRate           = 5
	defaultAuthBurst          = 10
	defaultAuthRateExpiry     = 3 * time.Minute
)

//nolint:gochecknoglobals
var defaultAllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/pdf",
}

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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase project shared by auth, firestore and messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// DocStore selects and configures the document store backend
	DocStore *DocStoreConfig `json:"docStore" yaml:"docStore"`

	// Identity configures password and federated sign-in
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Mail configures transactional email delivery
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Storage configures file uploads
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Reconciler configures the application profile repair job
	Reconciler *ReconcilerConfig `json:"reconciler" yaml:"reconciler"`

	// AdminNotifications configures the per-session notification center
	AdminNotifications *AdminNotificationsConfig `json:"adminNotifications" yaml:"adminNotifications"`

	// RateLimit throttles the unauthenticated auth endpoints per client IP
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project credentials
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// DocStoreConfig defines the document store backend
type DocStoreConfig struct {
	// Provider type: "firestore", "redis" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Interval between change checks for backends without a native change feed
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`

	// Postgres statements slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	// Key namespace, lets several environments share one instance
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// IdentityConfig defines the hosted identity provider endpoints
type IdentityConfig struct {
	// Web API key of the project, required for password sign-in
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Request URI reported to the provider for federated sign-in
	FederatedRequestURI string `json:"federatedRequestUri" yaml:"federatedRequestUri"`

	// Where email action links land after completion
	ContinueURL string `json:"continueUrl" yaml:"continueUrl"`
}

// MailConfig defines the email provider
type MailConfig struct {
	// Provider type: "postmark", "sendgrid" or "log"
	Provider string `json:"provider" yaml:"provider"`

	PostmarkServerToken  string `json:"postmarkServerToken" yaml:"postmarkServerToken"`
	PostmarkAccountToken string `json:"postmarkAccountToken" yaml:"postmarkAccountToken"`
	SendGridAPIKey       string `json:"sendgridApiKey" yaml:"sendgridApiKey"`

	SenderAddress string `json:"senderAddress" yaml:"senderAddress"`
	SenderName    string `json:"senderName" yaml:"senderName"`
}

// StorageConfig defines the upload bucket and limits
type StorageConfig struct {
	// gocloud bucket URL, e.g. gs://bucket, s3://bucket, file:///tmp/uploads, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Base of the public URL returned for stored objects
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadSize    int64    `json:"maxUploadSize" yaml:"maxUploadSize"`
	AllowedMimeTypes []string `json:"allowedMimeTypes" yaml:"allowedMimeTypes"`
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

// ReconcilerConfig defines the schedule of the profile repair job
type ReconcilerConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Schedule  string `json:"schedule" yaml:"schedule"`
	BatchSize int    `json:"batchSize" yaml:"batchSize"`
}

// AdminNotificationsConfig bounds the in-memory notification list
type AdminNotificationsConfig struct {
	MaxItems int `json:"maxItems" yaml:"maxItems"`
}

// RateLimitConfig defines a token bucket per client IP
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: DOCSTORE_POSTGRES_SSLMODE -> docStore.postgres.sslMode
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (DOCSTORE_POSTGRES_REPLICAS_0_HOST, DOCSTORE_POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.DocStore.Postgres != nil {
		cfg.DocStore.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.DocStore == nil {
		cfg.DocStore = &DocStoreConfig{}
	}
	if cfg.DocStore.PollInterval <= 0 {
		cfg.DocStore.PollInterval = defaultPollInterval
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
	if len(cfg.Storage.AllowedMimeTypes) == 0 {
		cfg.Storage.AllowedMimeTypes = slices.Clone(defaultAllowedMimeTypes)
	}

	if cfg.Reconciler == nil {
		cfg.Reconciler = &ReconcilerConfig{Enabled: true}
	}
	if cfg.Reconciler.Schedule == "" {
		cfg.Reconciler.Schedule = defaultReconcileSchedule
	}
	if cfg.Reconciler.BatchSize <= 0 {
		cfg.Reconciler.BatchSize = defaultReconcileBatchSize
	}

	if cfg.AdminNotifications == nil {
		cfg.AdminNotifications = &AdminNotificationsConfig{}
	}
	if cfg.AdminNotifications.MaxItems <= 0 {
		cfg.AdminNotifications.MaxItems = defaultNotificationItems
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{Enabled: true}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = defaultAuthRate
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultAuthBurst
	}
	if cfg.RateLimit.ExpiresIn <= 0 {
		cfg.RateLimit.ExpiresIn = defaultAuthRateExpiry
	}
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
// Environment variable format: DOCSTORE_POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "DOCSTORE_POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
