package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	DB                 string // connection string for the database
	WaitForServices    string // duration to wait for other services to be ready
	LogLevel           string // sets the log level (zap log level values)
	SQLLogLevel        string // sets the log level for sql subsystem
	LogFormat          string // text vs json
	LogFilter          string // zapfilter rules, e.g. "info+:* debug:segment"
	MigrationSourceURL string // location of migration files, embedded files if empty
	IntervalType       string // interval type used for route segments
	Input              string // path to a JSON export
	ActivityID         int    // id of a stored activity
	OutputFormat       string // text, json or yaml
)

// Config holds the configuration values which are used by the application
type Config struct {
	IntervalType string
	OutputFormat string
	FromDB       bool // leaderboard source is the database
}
