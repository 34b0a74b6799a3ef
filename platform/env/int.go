package env

import (
	"go.uber.org/zap"
	"strconv"
)

// IntDefault return the result of searching an env var as int. An empty or invalid value falls back to def
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	return parse(log, env, def, "int", strconv.Atoi)
}
