package database

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "go-gin-gorm-crm/internal/core/logger"
)

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
	ConnectRetries     int
	Logger             *zap.Logger
}

var ErrUnsupportedDriver = gorm.ErrInvalidDB

func dialector(o Opts) (gorm.Dialector, error) {
	switch o.Driver {
	case "postgres":
		return postgres.Open(o.DSN), nil
	case "mysql":
		return mysql.Open(normalizeMySQLDSN(o.DSN, o.Username, o.Password)), nil
	case "sqlite":
		return sqlite.Open(o.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, o.Driver)
	}
}

func gormLogger(o Opts) logger.Interface {
	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	if o.Logger == nil {
		return logger.Default.LogMode(lvl)
	}
	w := log.New(applog.ToWriter(o.Logger.Named("gorm"), zapcore.InfoLevel), "", 0)
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
	})
}

// NewGorm opens the database, retrying with exponential backoff while the
// store is not reachable yet.
func NewGorm(o Opts) (*gorm.DB, error) {
	dial, err := dialector(o)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	open := func() error {
		var e error
		db, e = gorm.Open(dial, &gorm.Config{Logger: gormLogger(o)})
		if e != nil && o.Logger != nil {
			o.Logger.Warn("db open failed, retrying", zap.String("driver", o.Driver), zap.Error(e))
		}
		return e
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(max(0, o.ConnectRetries)))
	if err := backoff.Retry(open, policy); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if o.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	}
	if o.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	return db.Session(&gorm.Session{
		// no statement cache on sqlite: it runs on one shared connection
		PrepareStmt:     o.Driver != "sqlite",
		CreateBatchSize: 200,
		// writes run inside the unit of work's own transaction
		SkipDefaultTransaction: true,
	}), nil
}

// normalizeMySQLDSN rewrites a mysql:// or jdbc:mysql:// URL into the
// go-sql-driver form user:pass@tcp(host:port)/db?params. Anything else is
// returned unchanged.
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	in := strings.TrimPrefix(strings.TrimSpace(input), "jdbc:")
	if !strings.HasPrefix(in, "mysql://") {
		return in
	}
	u, err := url.Parse(in)
	if err != nil {
		return in
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	q := u.Query()
	if v := q.Get("user"); v != "" {
		user = v
	}
	if v := q.Get("password"); v != "" {
		pass = v
	}
	q.Del("user")
	q.Del("password")
	if userOverride != "" {
		user = userOverride
	}
	if passOverride != "" {
		pass = passOverride
	}

	// JDBC-only parameters
	if v := q.Get("characterEncoding"); v != "" && q.Get("charset") == "" {
		q.Set("charset", v)
	}
	q.Del("characterEncoding")
	q.Del("useUnicode")
	q.Del("zeroDateTimeBehavior")
	if v := strings.ToLower(q.Get("useSSL")); v != "" {
		switch v {
		case "true", "1":
			q.Set("tls", "true")
		case "skip-verify", "preferred":
			q.Set("tls", v)
		default:
			q.Set("tls", "false")
		}
		q.Del("useSSL")
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		q.Set("loc", tz)
		q.Del("serverTimezone")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "true")
	}
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}

	cred := user
	if pass != "" {
		cred += ":" + pass
	}
	if cred != "" {
		cred += "@"
	}
	dsn := fmt.Sprintf("%stcp(%s)/%s", cred, u.Host, strings.TrimPrefix(u.Path, "/"))
	if enc := q.Encode(); enc != "" {
		dsn += "?" + enc
	}
	return dsn
}
