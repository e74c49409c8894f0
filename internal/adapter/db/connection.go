package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskman/internal/config"
)

// ConnectDB opens the configured storage backend. The default is a local
// sqlite file; mysql is kept for deployments that already run one.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverMysql:
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

		return sqlx.Connect(config.DriverMysql, dsn)
	case config.DriverSqlite, "":
		return sqlx.Connect(config.DriverSqlite, conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", conf.DbDriver)
	}
}
