package sqlstore

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mariepimienta/task-app/internal/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Connect opens the database selected by STORAGE_DRIVER. The sqlite
// backend is the single-machine analog of the clients' local storage;
// mysql serves a hosted deployment.
func Connect(conf *config.Config) (*sqlx.DB, error) {
	switch conf.StorageDriver {
	case DriverSQLite:
		return sqlx.Connect("sqlite3", conf.SQLitePath)
	case DriverMySQL:
		params := conf.DbParams
		if params == "" {
			params = "parseTime=true&multiStatements=true"
		}
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		)
		return sqlx.Connect("mysql", dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.StorageDriver)
	}
}
