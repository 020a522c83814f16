package database

import (
	"errors"
	"fmt"
	"net/url"

	"gift-shop/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies all pending up migrations from the migrations
// directory. A database that is already current is not an error.
func Migrate(config utils.DatabaseConfig) error {
	migrator, err := migrate.New("file://migrations", buildPostgresURL(config))
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func buildPostgresURL(config utils.DatabaseConfig) string {
	host := config.Host
	if config.Port != "" {
		host = fmt.Sprintf("%s:%s", config.Host, config.Port)
	}

	u := &url.URL{
		Scheme: "pgx5",
		Host:   host,
		User:   url.UserPassword(config.User, config.Password),
		Path:   config.Name,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}
