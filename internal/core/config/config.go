package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host              string
	Port              int
	ReadTimeoutSec    int
	WriteTimeoutSec   int
	IdleTimeoutSec    int
	RequestTimeoutSec int
	RateLimitRPS      float64
	RateLimitBurst    int
	MaxConcurrent     int64
	MaxBodyBytes      int64
	CORSOrigins       []string
}

type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// StatsTTLSec is how long dashboard aggregates stay cached.
	StatsTTLSec int `mapstructure:"stats_ttl_sec"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	ConnectRetries     int
	AutoMigrate        bool
	LogLevel           string
}

// Seed describes the administrator created on first start when no user exists.
type Seed struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Config is read once at start-up and handed to constructors; nothing reads
// it through a global.
type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Seed  Seed
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "crm")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.http.requesttimeoutsec", 10)
	v.SetDefault("app.http.ratelimitrps", 200)
	v.SetDefault("app.http.ratelimitburst", 400)
	v.SetDefault("app.http.maxconcurrent", 300)
	v.SetDefault("app.http.maxbodybytes", 16<<20)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.port", 8081)
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.issuer", "crm")
	v.SetDefault("jwt.accesstokenttlmin", 60)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "crm.db")
	v.SetDefault("db.connectretries", 5)
	v.SetDefault("db.loglevel", "warn")
	v.SetDefault("redis.stats_ttl_sec", 60)
}

// Read loads the YAML file at path with APP_* environment overrides
// (APP_JWT_SECRET overrides jwt.secret).
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret must be set")
	}
	return &c, nil
}

// Load is Read for main packages: a missing or invalid config is fatal.
func Load(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	c, err := Read(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return c
}
