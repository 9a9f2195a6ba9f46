package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// dotEnvFile is read before the process environment is consulted. Values
// already present in the environment are not overwritten by it.
var dotEnvFile = ".env"

func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if v, ok := lookup("NEWSDESK_API_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup("NEWSDESK_DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup("NEWSDESK_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("NEWSDESK_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup("NEWSDESK_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		cfg.RequestsPerSecond = rps
	}
	if v, ok := lookup("NEWSDESK_ONLINE_CHECK_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.OnlineCheckInterval = d
	}
	return nil
}
