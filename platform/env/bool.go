package env

import (
	"go.uber.org/zap"
	"strconv"
)

// BoolDefault return the result of searching an env var as bool. An empty or invalid value falls back to def
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	return parse(log, env, def, "bool", strconv.ParseBool)
}
