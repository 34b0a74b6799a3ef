package sys

import (
	"github.com/ribgsilva/studyvault/platform/env"
	"go.uber.org/zap"
)

// Defaults are the values that change from one binary to the other
type Defaults struct {
	HttpPort string
	AppName  string
}

// LoadStorage fills the database, cache and images configs
func LoadStorage(log *zap.SugaredLogger) {
	Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	Configs.Images.BucketURL = env.OrDefault(log, "IMAGES_BUCKET_URL", "mem://")
	Configs.Images.MaxSize = env.IntDefault(log, "IMAGES_MAX_SIZE", "1048576")
	Configs.Images.OperationTimeout = env.DurationDefault(log, "IMAGES_OPERATION_TIMEOUT", "10s")
}

// Load fills every config shared by the long running binaries
func Load(log *zap.SugaredLogger, d Defaults) {
	Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", d.HttpPort)
	Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")

	LoadStorage(log)

	Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", d.AppName)
	Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}
