package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "MARKETCONNECT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvDBDSN  = "MARKETCONNECT_DB_DSN"
	EnvDBHost = "MARKETCONNECT_DB_HOST"
	EnvDBUser = "MARKETCONNECT_DB_USER"
	EnvDBName = "MARKETCONNECT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Payments     PaymentsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MARKETCONNECT_APP_ENV" default:"dev"`
	Port         string `envconfig:"MARKETCONNECT_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"MARKETCONNECT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MARKETCONNECT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"MARKETCONNECT_DB_DRIVER" default:"postgres"`
	DSN    string `envconfig:"MARKETCONNECT_DB_DSN"`

	// SQLitePath keeps the original deployment shape alive for dev setups.
	SQLitePath string `envconfig:"MARKETCONNECT_DB_SQLITE_PATH" default:"vendors.db"`

	LegacyHost     string `envconfig:"MARKETCONNECT_DB_HOST"`
	LegacyPort     int    `envconfig:"MARKETCONNECT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MARKETCONNECT_DB_USER"`
	LegacyPassword string `envconfig:"MARKETCONNECT_DB_PASSWORD"`
	LegacyName     string `envconfig:"MARKETCONNECT_DB_NAME"`
	LegacySSLMode  string `envconfig:"MARKETCONNECT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MARKETCONNECT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MARKETCONNECT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MARKETCONNECT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MARKETCONNECT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"MARKETCONNECT_REDIS_URL"`
	Address      string        `envconfig:"MARKETCONNECT_REDIS_ADDR"`
	Password     string        `envconfig:"MARKETCONNECT_REDIS_PASSWORD"`
	DB           int           `envconfig:"MARKETCONNECT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MARKETCONNECT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MARKETCONNECT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MARKETCONNECT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MARKETCONNECT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MARKETCONNECT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The
// idempotency layer degrades to a pass-through when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MARKETCONNECT_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:8080,http://localhost:5173,http://127.0.0.1:8080,http://127.0.0.1:3000"`
}

type PaymentsConfig struct {
	GatewayKeyID  string `envconfig:"MARKETCONNECT_PAYMENT_GATEWAY_KEY_ID"`
	GatewaySecret string `envconfig:"MARKETCONNECT_PAYMENT_GATEWAY_SECRET"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MARKETCONNECT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.IsSQLite() {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}

	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
