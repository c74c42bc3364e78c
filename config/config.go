package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate when a setting cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// MaxBatchSize is the largest number of pairs the ticker endpoint accepts per call.
const MaxBatchSize = 40

// currencyPattern restricts the reference currency; it is used as a column name.
var currencyPattern = regexp.MustCompile(`^[a-z0-9]+$`)

type Config struct {
	Yobit    YobitConfig    `mapstructure:"yobit"`
	Tracker  TrackerConfig  `mapstructure:"tracker"`
	Log      LogConfig      `mapstructure:"log"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type YobitConfig struct {
	REST  RESTConfig  `mapstructure:"rest"`
	Trade TradeConfig `mapstructure:"trade"`
}

// RESTConfig configures the public (ticker) API.
type RESTConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	BatchSize  int           `mapstructure:"batch_size"`  // pairs per ticker request
	BatchDelay time.Duration `mapstructure:"batch_delay"` // pause between ticker requests
}

// TradeConfig configures the authenticated (trade) API.
type TradeConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	KeyFile string        `mapstructure:"key_file"` // key on line 1, secret on line 2
}

type TrackerConfig struct {
	ReferenceCurrency string        `mapstructure:"reference_currency"`
	BalanceFile       string        `mapstructure:"balance_file"`
	ChartDir          string        `mapstructure:"chart_dir"`
	Interval          time.Duration `mapstructure:"interval"`
}

// Options defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// DefaultDir returns the directory holding config.yaml.
// Under `go run`/`go test` it resolves relative to the working directory.
func DefaultDir() string {
	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		return filepath.Join(pwd, "../../config")
	}
	return filepath.Join(filepath.Dir(ex), "../config")
}

// Load loads application configuration using Viper.
// It reads config.yaml from dir, then an optional .env file, and overrides
// both with environment variables.
func Load(dir string) (*Config, error) {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)

	// Support environment variables with dot notation (e.g., YOBIT_REST_BASE_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Tracker.ReferenceCurrency = strings.ToLower(cfg.Tracker.ReferenceCurrency)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("yobit.rest.base_url", "https://yobit.net/api/3")
	v.SetDefault("yobit.rest.timeout", 10*time.Second)
	v.SetDefault("yobit.rest.batch_size", MaxBatchSize)
	v.SetDefault("yobit.rest.batch_delay", 2*time.Second)
	v.SetDefault("yobit.trade.base_url", "https://yobit.net/tapi/")
	v.SetDefault("yobit.trade.timeout", 10*time.Second)
	v.SetDefault("yobit.trade.key_file", "key.txt")
	v.SetDefault("tracker.reference_currency", "usd")
	v.SetDefault("tracker.balance_file", "balance.csv")
	v.SetDefault("tracker.chart_dir", "dashboard")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.environment", "dev")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if !currencyPattern.MatchString(c.Tracker.ReferenceCurrency) {
		return fmt.Errorf("%w: reference currency %q must match %s",
			ErrInvalidConfig, c.Tracker.ReferenceCurrency, currencyPattern)
	}
	if c.Yobit.REST.BatchSize < 1 || c.Yobit.REST.BatchSize > MaxBatchSize {
		return fmt.Errorf("%w: batch size %d out of range 1..%d",
			ErrInvalidConfig, c.Yobit.REST.BatchSize, MaxBatchSize)
	}
	if c.Yobit.REST.BatchDelay < 0 {
		return fmt.Errorf("%w: negative batch delay", ErrInvalidConfig)
	}
	if c.Yobit.REST.BaseURL == "" || c.Yobit.Trade.BaseURL == "" {
		return fmt.Errorf("%w: yobit base urls are required", ErrInvalidConfig)
	}
	return nil
}
