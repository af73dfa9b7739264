package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/vperelygin/go-conf-sync/internal/overrides"
)

// ParseFlags parses process-level configuration flags from args. Double-dash
// tokens are configuration overrides, not process flags; callers pass argv
// through [overrides.SplitArgs] first so this parser only ever sees its own
// single-dash flags.
//
// Flags:
//
//	-a host listen address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g. "30s")
//	-document persisted document file path
//	-sqlite sqlite database path for the document backend
//	-d postgres DSN for the document backend
//	-auth-key shared read-API auth key
//	-base-url host base URL (front-end)
//	-adapter-timeout outbound request timeout (front-end)
//	-refresh-interval front-end full-document refresh interval
//	-c/-config json file path with configs
func ParseFlags(args []string) *StructuredConfig {
	var listenAddress string
	var requestTimeout time.Duration
	var documentPath string
	var sqlitePath string
	var databaseDSN string
	var authKey string
	var baseURL string
	var adapterTimeout time.Duration
	var refreshInterval time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-conf-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&listenAddress, "a", "", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&documentPath, "document", "", "Persisted document file path")
	fs.StringVar(&sqlitePath, "sqlite", "", "SQLite database path")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&authKey, "auth-key", "", "Read API auth key")
	fs.StringVar(&baseURL, "base-url", "", "Host base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Full document refresh interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// Unknown flags are not fatal here for the same reason malformed
	// override tokens are not: startup inputs degrade, they do not kill
	// the process.
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			AuthKey: authKey,
		},
		Server: Server{
			HTTPAddress:    listenAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN:          databaseDSN,
			SQLitePath:   sqlitePath,
			DocumentPath: documentPath,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

func processFlagArgs() []string {
	flagArgs, _ := overrides.SplitArgs(os.Args[1:])
	return flagArgs
}
