package env

import (
	"go.uber.org/zap"
	"time"
)

// DurationDefault return the result of searching an env var as time.Duration. An empty or invalid value falls back to def
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	return parse(log, env, def, "duration", time.ParseDuration)
}
