// Package env reads configuration values from environment variables, logging every
// fallback to a default so the effective configuration shows up in the startup logs.
package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Infow("config", "env", env, "status", "using default")
	return def
}

// Must return the value of an env var, exiting the application when it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("config", "env", env, "status", "required env var is empty")
	}
	return v
}

// parse converts the env var with p, using def when the value is empty or p rejects it.
// A def that p rejects yields the zero value.
func parse[T any](log *zap.SugaredLogger, env, def, kind string, p func(string) (T, error)) T {
	v := OrDefault(log, env, def)
	parsed, err := p(v)
	if err == nil {
		return parsed
	}
	log.Warnw("config", "env", env, "status", "invalid "+kind+", using default", "value", v, "error", err)
	parsed, err = p(def)
	if err != nil {
		log.Errorw("config", "env", env, "status", "invalid default "+kind, "value", def, "error", err)
	}
	return parsed
}
