package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"civic/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSeedCount        = 100
	defaultPhoneMaxAttempts = 1000
	defaultListingHorizon   = 120 * 24 * time.Hour
	defaultPinnedEmail      = "organizer@example.org"
	defaultSQLitePath       = "civic_dev.db"
	defaultMetricsJob       = "civic_seed"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Seed controls record counts and the fixture generator
	Seed SeedConfig `json:"seed" yaml:"seed"`

	// Metrics configures the optional Prometheus Pushgateway export
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig selects the GORM dialector used for seeding.
type DatabaseConfig struct {
	// Driver is "postgres" (default) or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file used by the sqlite driver. ":memory:" is allowed.
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// AutoMigrate creates the fixture tables when they are missing.
	// The host application owns the production schema, so this is meant for throwaway databases.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SeedConfig defines how many fixtures are generated and how.
type SeedConfig struct {
	Users        int `json:"users" yaml:"users"`
	CallActions  int `json:"callActions" yaml:"callActions"`
	EmailActions int `json:"emailActions" yaml:"emailActions"`
	EventActions int `json:"eventActions" yaml:"eventActions"`

	// RandomSeed makes a run reproducible. Zero picks a time based seed.
	RandomSeed uint64 `json:"randomSeed" yaml:"randomSeed"`

	// PhoneMaxAttempts bounds the phone number synthesizer
	PhoneMaxAttempts int `json:"phoneMaxAttempts" yaml:"phoneMaxAttempts"`

	// PinnedEmail is the target address of the first email action
	PinnedEmail string `json:"pinnedEmail" yaml:"pinnedEmail"`

	// ListingHorizon is how far past now a listing window may end
	ListingHorizon time.Duration `json:"listingHorizon" yaml:"listingHorizon"`

	// VenueBounds limits generated event coordinates, as [minLon, minLat, maxLon, maxLat]
	VenueBounds []float64 `json:"venueBounds" yaml:"venueBounds"`
}

// MetricsConfig defines Prometheus Pushgateway settings for batch runs
type MetricsConfig struct {
	PushgatewayURL string `json:"pushgatewayUrl" yaml:"pushgatewayUrl"`
	Job            string `json:"job" yaml:"job"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Explicit paths win over the working directory
	searchPaths := make([]string, 0, len(configPath)+1)
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}
	searchPaths = append(searchPaths, defaultPath)

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

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SEED_CALLACTIONS -> seed.callActions
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
				mapstructure.StringToSliceHookFunc(","),
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

// New loads config.yaml from the usual locations relative to the working directory.
func New() (*Config, error) {
	return Load("")
}

// Load reads config.yaml, preferring dir when it is not empty.
// A .env file next to the config (or in the working directory) is applied first
// so that its values take part in the env overrides.
func Load(dir string) (*Config, error) {
	paths := []string{"config", "../config", "../../config"}
	envFiles := []string{".env"}
	if dir != "" {
		paths = append([]string{dir}, paths...)
		envFiles = append([]string{filepath.Join(dir, ".env")}, envFiles...)
	}
	for _, envFile := range envFiles {
		if err := loadDotEnv(envFile); err != nil {
			return nil, err
		}
	}

	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadDotEnv applies path to the process environment without overriding set variables.
// A missing file is skipped.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.Wrapf(err, "failed to load %s", path)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Database.Driver) == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.Driver == DriverSQLite && cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = defaultSQLitePath
	}

	seed := &cfg.Seed
	for _, count := range []*int{&seed.Users, &seed.CallActions, &seed.EmailActions, &seed.EventActions} {
		if *count <= 0 {
			*count = defaultSeedCount
		}
	}
	if seed.PhoneMaxAttempts <= 0 {
		seed.PhoneMaxAttempts = defaultPhoneMaxAttempts
	}
	if seed.PinnedEmail == "" {
		seed.PinnedEmail = defaultPinnedEmail
	}
	if seed.ListingHorizon <= 0 {
		seed.ListingHorizon = defaultListingHorizon
	}

	if cfg.Metrics != nil && cfg.Metrics.Job == "" {
		cfg.Metrics.Job = defaultMetricsJob
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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
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
