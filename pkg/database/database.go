package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Params          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectRetries  int
}

// SQLDriverName maps the configured driver to the name registered with database/sql.
func (c *Config) SQLDriverName() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		return "mysql", nil
	case DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", c.Driver)
	}
}

func (c *Config) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, c.Port)
		mc.DBName = c.DBName
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Timeout = 10 * time.Second
		mc.ReadTimeout = 30 * time.Second
		if c.Params != "" {
			values, err := url.ParseQuery(c.Params)
			if err != nil {
				return "", fmt.Errorf("parse DB_PARAMS: %w", err)
			}
			mc.Params = map[string]string{}
			for k := range values {
				mc.Params[k] = values.Get(k)
			}
		}
		return mc.FormatDSN(), nil
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
		if c.Params != "" {
			dsn += " " + c.Params
		}
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", c.Driver)
	}
}

// NewDB opens the pool, applies pool limits and pings until the database answers
// or ConnectRetries attempts are used up.
func NewDB(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	driverName, err := cfg.SQLDriverName()
	if err != nil {
		return nil, err
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	retries := cfg.ConnectRetries
	if retries < 1 {
		retries = 1
	}
	backoff := time.Second
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return db, nil
		}
		if attempt >= retries {
			break
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	db.Close()
	return nil, fmt.Errorf("ping %s after %d attempts: %w", cfg.Driver, retries, err)
}
