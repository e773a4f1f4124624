// Package service wires the session core and configuration behind a
// single seam used by the cmd and tui layers.
package service

import (
	"github.com/xolan/suds/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Session *SessionService
	Config  *ConfigService
}

// NewServicesWithConfig creates a new Services instance for the given
// config path and loaded configuration
func NewServicesWithConfig(configPath string, cfg config.Config) *Services {
	return &Services{
		Session: NewSessionService(cfg),
		Config:  NewConfigService(configPath, cfg),
	}
}
