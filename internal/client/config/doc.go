// Package config loads runtime configuration for the newsdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory (if present) and the process
//     environment (see parseEnv).
//  3. Optional JSON or YAML file selected via -c or -config (see parseFile).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-a string   base URL of the news REST API
//	-d string   path of the local SQLite database holding the session token
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, console)
//	-r float    outbound requests per second, 0 disables pacing
//	-i int      online status check interval (seconds), 0 disables the probe
//
// Environment variables
//
//	NEWSDESK_API_URL, NEWSDESK_DB_PATH, NEWSDESK_LOG_LEVEL, NEWSDESK_LOG_FORMAT,
//	NEWSDESK_RPS, NEWSDESK_ONLINE_CHECK_INTERVAL
//
// # File schema
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// Intervals use timex.Duration so they may be "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5001/api",
//	  "db_path": "newsdesk.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "requests_per_second": 5,
//	  "online_check_interval": "15s"
//	}
package config
