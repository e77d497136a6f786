package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Property write stores selectable with PROPERTY_STORE.
const (
	PropertyStoreMemory   = "memory"
	PropertyStorePostgres = "postgres"
	PropertyStoreMongo    = "mongo"
)

type Config struct {
	Port      string        `env:"PORT,default=3000"`
	Env       string        `env:"ENV,default=development"`
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,default=info"`

	// PropertyStore selects where new properties are written. Listing always
	// reads from Postgres.
	PropertyStore string `env:"PROPERTY_STORE,default=memory"`
	SnapshotDir   string `env:"SNAPSHOT_DIR,default=seeds"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Mongo    MongoConfig
}

type PostgresConfig struct {
	// URL takes precedence over the discrete fields when set.
	URL             string        `env:"DATABASE_URL"`
	Host            string        `env:"DB_HOST,default=localhost"`
	Port            int           `env:"DB_PORT,default=5432"`
	User            string        `env:"DB_USER,default=vagrant"`
	Password        string        `env:"DB_PASSWORD,default=123"`
	Database        string        `env:"DB_NAME,default=lightbnb"`
	SSLMode         string        `env:"DB_SSLMODE,default=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=1"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=1h"`
	QueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT,default=3s"`
}

type RedisConfig struct {
	// Unset by default; an empty address disables the idempotency guard.
	Addr           string        `env:"REDIS_ADDR"`
	DB             int           `env:"REDIS_DB,default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL,default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,default=lightbnb"`
}

// DSN returns the connection string handed to the pgx driver.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.Database,
	}
	q := url.Values{}
	q.Set("sslmode", p.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.PropertyStore {
	case PropertyStoreMemory, PropertyStorePostgres, PropertyStoreMongo:
	default:
		return nil, fmt.Errorf("config: unknown PROPERTY_STORE %q", cfg.PropertyStore)
	}
	return &cfg, nil
}
