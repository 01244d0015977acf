package repository

import (
	"github.com/diillson/segment-report-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadEnvConfig(envFile string) (*types.Config, error)
}
