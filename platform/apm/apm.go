// Package apm starts the New Relic agent.
package apm

import (
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Config of the agent. A disabled agent still returns a usable Application.
type Config struct {
	AppName           string
	Licence           string
	Enabled           bool
	ConnectionTimeout time.Duration
}

// Start creates the application and waits for it to connect
func Start(cfg Config) (*newrelic.Application, error) {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.Licence),
		newrelic.ConfigEnabled(cfg.Enabled),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create new relic app: %w", err)
	}
	if !cfg.Enabled {
		return app, nil
	}
	if err := app.WaitForConnection(cfg.ConnectionTimeout); err != nil {
		return nil, fmt.Errorf("could not connect to new relic: %w", err)
	}
	return app, nil
}
