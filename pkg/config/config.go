package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "projectscope"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvDBDSN  = "PROJECTSCOPE_DB_DSN"
	EnvDBHost = "PROJECTSCOPE_DB_HOST"
	EnvDBUser = "PROJECTSCOPE_DB_USER"
	EnvDBName = "PROJECTSCOPE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"PROJECTSCOPE_APP_ENV" required:"true"`
	Port         string `envconfig:"PROJECTSCOPE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PROJECTSCOPE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PROJECTSCOPE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PROJECTSCOPE_DB_DSN"`
	Driver string `envconfig:"PROJECTSCOPE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PROJECTSCOPE_DB_HOST"`
	LegacyPort     int    `envconfig:"PROJECTSCOPE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PROJECTSCOPE_DB_USER"`
	LegacyPassword string `envconfig:"PROJECTSCOPE_DB_PASSWORD"`
	LegacyName     string `envconfig:"PROJECTSCOPE_DB_NAME"`
	LegacySSLMode  string `envconfig:"PROJECTSCOPE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PROJECTSCOPE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PROJECTSCOPE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PROJECTSCOPE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PROJECTSCOPE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PROJECTSCOPE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PROJECTSCOPE_REDIS_ADDR"`
	Password     string        `envconfig:"PROJECTSCOPE_REDIS_PASSWORD"`
	DB           int           `envconfig:"PROJECTSCOPE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PROJECTSCOPE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PROJECTSCOPE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PROJECTSCOPE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PROJECTSCOPE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PROJECTSCOPE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	TTL            time.Duration `envconfig:"PROJECTSCOPE_SESSION_TTL" default:"720h"`
	CookieName     string        `envconfig:"PROJECTSCOPE_SESSION_COOKIE_NAME" default:"session"`
	PreferencesTTL time.Duration `envconfig:"PROJECTSCOPE_PREFERENCES_TTL" default:"720h"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PROJECTSCOPE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PROJECTSCOPE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
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
