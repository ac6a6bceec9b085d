package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/space-market/pos-server/internal/core/domain"
)

const defaultDecimalSeparator = ","

type Config struct {
	Port            string        `env:"PORT,             default=3000"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,  default=10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=15s"`

	Database       DatabaseConfig
	Mongo          MongoConfig
	Redis          RedisConfig
	DefaultProduct DefaultProductConfig
	Info           InfoConfig
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL,         default=sqlite3://database.sqlite"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE,      default=true"`
}

// MongoConfig configures the balance journal. An empty URI disables it.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB,        default=pos_server"`
	Workers  int    `env:"JOURNAL_WORKERS, default=4"`
}

// RedisConfig configures the idempotency guard. An empty Addr disables it.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type DefaultProductConfig struct {
	Price       int64   `env:"DEFAULT_PRODUCT_PRICE,  default=150"`
	PackageSize *string `env:"DEFAULT_PRODUCT_PACKAGE_SIZE, noinit"`
	Caffeine    *int64  `env:"DEFAULT_PRODUCT_CAFFEINE,     noinit"`
	Alcohol     *int64  `env:"DEFAULT_PRODUCT_ALCOHOL,      noinit"`
	Energy      *int64  `env:"DEFAULT_PRODUCT_ENERGY,       noinit"`
	Sugar       *int64  `env:"DEFAULT_PRODUCT_SUGAR,        noinit"`
	Active      bool    `env:"DEFAULT_PRODUCT_ACTIVE, default=true"`
}

type InfoConfig struct {
	Version           string  `env:"SERVER_VERSION,  default=3.0.0"`
	Currency          string  `env:"CURRENCY,        default=€"`
	CurrencyBefore    bool    `env:"CURRENCY_BEFORE, default=false"`
	DecimalSeparator  *string `env:"DECIMAL_SEPARATOR,   noinit"`
	Energy            string  `env:"ENERGY_UNIT,     default=kJ"`
	GlobalCreditLimit *int64  `env:"GLOBAL_CREDIT_LIMIT, noinit"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves configuration through an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Product returns the default-product policy injected into the services.
func (c *Config) Product() domain.DefaultProduct {
	d := c.DefaultProduct
	return domain.DefaultProduct{
		Price:       d.Price,
		PackageSize: d.PackageSize,
		Caffeine:    d.Caffeine,
		Alcohol:     d.Alcohol,
		Energy:      d.Energy,
		Sugar:       d.Sugar,
		Active:      d.Active,
	}
}

// ServerInfo builds the static /info payload.
func (c *Config) ServerInfo() domain.ServerInfo {
	sep := c.Info.DecimalSeparator
	if sep == nil {
		s := defaultDecimalSeparator
		sep = &s
	}
	return domain.ServerInfo{
		Version:           c.Info.Version,
		GlobalCreditLimit: domain.CreditLimit{Limit: c.Info.GlobalCreditLimit},
		Currency:          c.Info.Currency,
		CurrencyBefore:    c.Info.CurrencyBefore,
		DecimalSeparator:  sep,
		Energy:            c.Info.Energy,
		Defaults:          c.Product(),
	}
}
