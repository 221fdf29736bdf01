package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"latina/config"
)

const (
	postgresMaxIdleConnection = 5
	postgresMaxOpenConnection = 10
)

// Connection holds the reservation journal database. The site only writes to
// it, so there is no read replica.
type Connection struct {
	Write *sqlx.DB
}

// New returns nil when the journal is disabled.
func New(config *config.Config) *Connection {
	if !config.DB.Postgres.Enable {
		log.Info().Msg("Postgres disabled, reservations are not journaled")

		return nil
	}

	write := CreatePostgresWriteConn(*config)
	if write == nil {
		log.Fatal().Msg("Failed to connect to Postgres after retries")
	}

	return &Connection{
		Write: write,
	}
}

func (c *Connection) Close() error {
	if c == nil || c.Write == nil {
		return nil
	}

	if err := c.Write.Close(); err != nil {
		return fmt.Errorf("failed to close postgres connection: %w", err)
	}

	return nil
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN builds the connection URL shared by the pool and the migrator.
func DSN(config config.Config) string {
	write := config.DB.Postgres.Write

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		getDBName(config, write.Name),
		write.SSLMode,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		DSN(config),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresConnection connects, retrying maxRetry times waitTime seconds
// apart. It returns nil when every attempt failed.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
