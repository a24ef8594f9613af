// Package common holds the setup shared by the commands.
package common

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/config"
	"github.com/mpapenbr/gc-segments/pkg/db/postgres"
	"github.com/mpapenbr/gc-segments/pkg/utils"
)

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger configures the default logger from the log flags and returns
// the logger used for sql tracing.
func SetupLogger() *log.Logger {
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	if config.LogFilter != "" {
		filter, err := log.WithFilter(config.LogFilter)
		if err != nil {
			log.Warn("Ignoring invalid log filter",
				log.String("filter", config.LogFilter), log.ErrorField(err))
		} else {
			opts = append(opts, filter)
		}
	}
	var logger, sqlLogger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel), opts...)
		sqlLogger = log.New(os.Stderr, parseLogLevel(config.SQLLogLevel, log.InfoLevel), opts...)
	default:
		logger = log.DevLogger(os.Stderr, parseLogLevel(config.LogLevel, log.InfoLevel), opts...)
		sqlLogger = log.DevLogger(os.Stderr,
			parseLogLevel(config.SQLLogLevel, log.InfoLevel), opts...)
	}
	log.ResetDefault(logger)
	return sqlLogger.Named("sql")
}

// WaitForDB blocks until the database accepts tcp connections.
func WaitForDB() error {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	return utils.WaitForTCP(utils.ExtractFromDBURL(config.DB), timeout)
}

// OpenDB waits for the database and creates the connection pool.
func OpenDB(ctx context.Context, sqlLogger *log.Logger) (*pgxpool.Pool, error) {
	if err := WaitForDB(); err != nil {
		return nil, err
	}
	return postgres.InitWithURL(ctx, config.DB, postgres.WithTracer(sqlLogger))
}
