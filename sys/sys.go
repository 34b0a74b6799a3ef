// Package sys holds the configuration and the shared resources of every binary.
package sys

import (
	"database/sql"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/studyvault/platform/auth"
	"go.uber.org/zap"
	"gocloud.dev/blob"
	"time"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Auth struct {
		Secret string
		Issuer string
	}
	Database struct {
		Driver           string
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		CacheTTL         time.Duration
	}
	Images struct {
		BucketURL        string
		MaxSize          int
		OperationTimeout time.Duration
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log      *zap.SugaredLogger
	Cache    *redis.Client
	Database *sql.DB
	Images   *blob.Bucket
	Auth     *auth.Verifier
}
