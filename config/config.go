package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "flowfinance"
	envPrefix  = "FLOWFINANCE"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	History   HistoryConfig   `mapstructure:"history"`
	Note      NoteConfig      `mapstructure:"note"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout     time.Duration `mapstructure:"idleTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// LogConfig selects the zerolog level and writer. Format is "json", "console" or "auto"
// (console when attached to a terminal).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RateLimitConfig allows Burst requests per client, refilled at RequestsPerMinute.
type RateLimitConfig struct {
	RequestsPerMinute float64 `mapstructure:"requestsPerMinute"`
	Burst             int     `mapstructure:"burst"`
}

type CacheDriver string

const (
	CacheMemory CacheDriver = "memory"
	CacheRedis  CacheDriver = "redis"
)

type CacheConfig struct {
	Driver CacheDriver `mapstructure:"driver"`
	Redis  RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Prefix   string        `mapstructure:"prefix"`
}

type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// NoteConfig is the fee schedule applied when discounting a promissory note.
// Rates are fractions, fees are currency amounts.
type NoteConfig struct {
	CapitalizationDays float64   `mapstructure:"capitalizationDays"`
	RetentionRate      float64   `mapstructure:"retentionRate"`
	InitialFees        []float64 `mapstructure:"initialFees"`
	InitialFeeRate     float64   `mapstructure:"initialFeeRate"`
	FinalFees          []float64 `mapstructure:"finalFees"`
	DelayFees          []float64 `mapstructure:"delayFees"`
	DelayRate          float64   `mapstructure:"delayRate"`
	DelayRateDays      float64   `mapstructure:"delayRateDays"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	v.SetDefault("rateLimit.requestsPerMinute", 60.0)
	v.SetDefault("rateLimit.burst", 10)

	v.SetDefault("cache.driver", string(CacheMemory))
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.ttl", time.Hour)
	v.SetDefault("cache.redis.timeout", 200*time.Millisecond)
	v.SetDefault("cache.redis.prefix", "flowfinance:")

	v.SetDefault("history.capacity", 1000)

	// Tarifario del descuento de pagarés
	v.SetDefault("note.capitalizationDays", 30.0)
	v.SetDefault("note.retentionRate", 0.16)
	v.SetDefault("note.initialFees", []float64{75, 5})
	v.SetDefault("note.initialFeeRate", 0.0025)
	v.SetDefault("note.finalFees", []float64{30, 7})
	v.SetDefault("note.delayFees", []float64{80, 70, 62.35}) // protesto, pago tardío, interés compensatorio
	v.SetDefault("note.delayRate", 0.492537313)
	v.SetDefault("note.delayRateDays", 120.0)
}

// LoadConfig reads flowfinance.yaml from path (optional), a .env file in the working directory
// (optional) and FLOWFINANCE_* environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: unknown cache driver %q", c.Cache.Driver)
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("config: rate limit must be positive")
	}
	if c.History.Capacity <= 0 {
		return errors.New("config: history capacity must be positive")
	}
	if c.Note.CapitalizationDays <= 0 {
		return errors.New("config: note capitalization days must be positive")
	}
	if c.Note.DelayRateDays <= 0 {
		return errors.New("config: note delay rate days must be positive")
	}
	return nil
}
