// Package db wraps database/sql with a squirrel statement builder and
// URL-based driver selection (postgres via pgx, otherwise embedded sqlite).
package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	_ "modernc.org/sqlite"             // embedded sqlite driver
)

const (
	_defaultMaxPoolSize  = 2
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

// OpenFunc matches sql.Open, injectable for tests.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// SQL -.
type SQL struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration
	enableFK     bool

	Builder    squirrel.StatementBuilderType
	Pool       *sql.DB
	IsEmbedded bool
}

// New parses the URL, opens the matching driver, and verifies connectivity.
// An empty URL falls back to a local sqlite database file.
func New(url string, open OpenFunc, opts ...Option) (*SQL, error) {
	s := &SQL{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	driver, dsn := resolveDriver(url, s.enableFK)
	s.IsEmbedded = driver == "sqlite"

	if s.IsEmbedded {
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	} else {
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}

	pool, err := open(driver, dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(s.maxPoolSize)

	var pingErr error

	for s.connAttempts > 0 {
		pingErr = pool.Ping()
		if pingErr == nil {
			break
		}

		time.Sleep(s.connTimeout)

		s.connAttempts--
	}

	if pingErr != nil {
		return nil, pingErr
	}

	s.Pool = pool

	return s, nil
}

// Close -.
func (s *SQL) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func resolveDriver(url string, enableFK bool) (driver, dsn string) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "pgx", url
	case url == "":
		url = "portal.db"
	}

	if enableFK && !strings.Contains(url, "_pragma") {
		url += "?_pragma=foreign_keys(1)"
	}

	return "sqlite", url
}
