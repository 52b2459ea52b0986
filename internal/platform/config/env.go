// Package config loads dashboard process configuration from the
// environment and carries the fatal-exit helper shared by the CLI
// entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from environment variables declared through
// `env` struct tags. Dashboard variables follow the ACME_DASHBOARD_
// prefix convention.
func ParseEnv(target any) error {
	if target == nil {
		return fmt.Errorf("parse env: nil target")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
