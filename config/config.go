package config

import (
	"os"
	"path/filepath"
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
	defaultPath = "."

	// StorageDriverMemory keeps every document in process memory.
	StorageDriverMemory = "memory"
	// StorageDriverSQLite persists documents to a local SQLite file.
	StorageDriverSQLite = "sqlite"
	// StorageDriverPostgres persists documents through GORM and PostgreSQL.
	StorageDriverPostgres = "postgres"

	// InitialSampleSeed makes the first fix after a start establish baseline membership silently.
	InitialSampleSeed = "seed"
	// InitialSampleTransition diffs the first fix against an empty membership map.
	InitialSampleTransition = "transition"
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		ParentSession string `json:"parentSession" yaml:"parentSession"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage selects the key-value backend for the parental store
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Monitor configures safe zone monitoring
	Monitor *MonitorConfig `json:"monitor" yaml:"monitor"`

	// Auth configures parent mode PIN authentication
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// MQTT configuration for the child device link
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for safe zone event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for device pairing codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where parental data is persisted
type StorageConfig struct {
	// Driver is one of "memory", "sqlite" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file used by the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// SecureKey is a hex encoded 32 byte key sealing the secure namespace
	SecureKey string `json:"secureKey" yaml:"secureKey"`
}

// MonitorConfig defines safe zone monitoring behaviour
type MonitorConfig struct {
	// Minimum time between two notifications for the same zone and event type
	NotificationCooldown time.Duration `json:"notificationCooldown" yaml:"notificationCooldown"`

	// Maximum number of safe zone activity records kept on the dashboard
	ActivityLogLimit int `json:"activityLogLimit" yaml:"activityLogLimit"`

	// Location watch cadence: re-check at least this often
	WatchInterval time.Duration `json:"watchInterval" yaml:"watchInterval"`

	// Location watch cadence: or whenever the device moved this many meters
	WatchDistance float64 `json:"watchDistance" yaml:"watchDistance"`

	// Accuracy hint passed to the location provider ("balanced", "high", "low")
	Accuracy string `json:"accuracy" yaml:"accuracy"`

	// InitialSample is "seed" or "transition"
	InitialSample string `json:"initialSample" yaml:"initialSample"`

	// GeofencingEnabled registers OS-level regions on the device when monitoring starts
	GeofencingEnabled bool `json:"geofencingEnabled" yaml:"geofencingEnabled"`
}

// AuthConfig defines parent mode authentication limits
type AuthConfig struct {
	MaxAttempts     int           `json:"maxAttempts" yaml:"maxAttempts"`
	LockoutDuration time.Duration `json:"lockoutDuration" yaml:"lockoutDuration"`
	SessionTimeout  time.Duration `json:"sessionTimeout" yaml:"sessionTimeout"`
	SaltLength      int           `json:"saltLength" yaml:"saltLength"`
}

// MQTTConfig defines the broker connection used to talk to the child device
type MQTTConfig struct {
	Broker         string        `json:"broker" yaml:"broker"`
	ClientID       string        `json:"clientId" yaml:"clientId"`
	Username       string        `json:"username" yaml:"username"`
	Password       string        `json:"password" yaml:"password"`
	TopicPrefix    string        `json:"topicPrefix" yaml:"topicPrefix"`
	DeviceID       string        `json:"deviceId" yaml:"deviceId"`
	QoS            byte          `json:"qos" yaml:"qos"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`

	// RequestTimeout bounds how long a request to the device waits for its reply
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string   `json:"projectId" yaml:"projectId"`
	CredentialsPath string   `json:"credentialsPath" yaml:"credentialsPath"`
	GuardianTokens  []string `json:"guardianTokens" yaml:"guardianTokens"`
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

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// DefaultMonitorConfig returns the monitoring cadence of the mobile app.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		NotificationCooldown: 5 * time.Minute,
		ActivityLogLimit:     50,
		WatchInterval:        30 * time.Second,
		WatchDistance:        50,
		Accuracy:             "balanced",
		InitialSample:        InitialSampleSeed,
		GeofencingEnabled:    true,
	}
}

// DefaultAuthConfig returns the parent mode security limits.
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{
		MaxAttempts:     5,
		LockoutDuration: 15 * time.Minute,
		SessionTimeout:  30 * time.Minute,
		SaltLength:      32,
	}
}

// DefaultMQTTConfig returns the device link settings used when the mqtt section is missing.
func DefaultMQTTConfig() *MQTTConfig {
	return &MQTTConfig{
		Broker:         "tcp://localhost:1883",
		ClientID:       "guardian-service",
		TopicPrefix:    "guardian",
		DeviceID:       "child-device",
		QoS:            1,
		ConnectTimeout: 10 * time.Second,
		RequestTimeout: 15 * time.Second,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: MONITOR_NOTIFICATIONCOOLDOWN -> monitor.notificationCooldown
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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
				mapstructure.StringToSliceHookFunc(","),
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = "1M"
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{Driver: StorageDriverMemory}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverMemory
	}

	monitorDefaults := DefaultMonitorConfig()
	if c.Monitor == nil {
		c.Monitor = monitorDefaults
	}
	if c.Monitor.NotificationCooldown <= 0 {
		c.Monitor.NotificationCooldown = monitorDefaults.NotificationCooldown
	}
	if c.Monitor.ActivityLogLimit <= 0 {
		c.Monitor.ActivityLogLimit = monitorDefaults.ActivityLogLimit
	}
	if c.Monitor.WatchInterval <= 0 {
		c.Monitor.WatchInterval = monitorDefaults.WatchInterval
	}
	if c.Monitor.WatchDistance <= 0 {
		c.Monitor.WatchDistance = monitorDefaults.WatchDistance
	}
	if c.Monitor.Accuracy == "" {
		c.Monitor.Accuracy = monitorDefaults.Accuracy
	}
	if c.Monitor.InitialSample == "" {
		c.Monitor.InitialSample = monitorDefaults.InitialSample
	}

	authDefaults := DefaultAuthConfig()
	if c.Auth == nil {
		c.Auth = authDefaults
	}
	if c.Auth.MaxAttempts <= 0 {
		c.Auth.MaxAttempts = authDefaults.MaxAttempts
	}
	if c.Auth.LockoutDuration <= 0 {
		c.Auth.LockoutDuration = authDefaults.LockoutDuration
	}
	if c.Auth.SessionTimeout <= 0 {
		c.Auth.SessionTimeout = authDefaults.SessionTimeout
	}
	if c.Auth.SaltLength <= 0 {
		c.Auth.SaltLength = authDefaults.SaltLength
	}

	mqttDefaults := DefaultMQTTConfig()
	if c.MQTT == nil {
		c.MQTT = mqttDefaults
	}
	if c.MQTT.Broker == "" {
		c.MQTT.Broker = mqttDefaults.Broker
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = mqttDefaults.ClientID
	}
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = mqttDefaults.TopicPrefix
	}
	if c.MQTT.DeviceID == "" {
		c.MQTT.DeviceID = mqttDefaults.DeviceID
	}
	if c.MQTT.ConnectTimeout <= 0 {
		c.MQTT.ConnectTimeout = mqttDefaults.ConnectTimeout
	}
	if c.MQTT.RequestTimeout <= 0 {
		c.MQTT.RequestTimeout = mqttDefaults.RequestTimeout
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverSQLite:
	case StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required for the postgres storage driver")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	if c.MQTT.QoS > 2 {
		return errors.Errorf("invalid mqtt qos: %d", c.MQTT.QoS)
	}

	switch c.Monitor.InitialSample {
	case InitialSampleSeed, InitialSampleTransition:
	default:
		return errors.Errorf("unknown initial sample policy: %s", c.Monitor.InitialSample)
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
