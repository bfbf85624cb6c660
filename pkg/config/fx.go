package config

import (
	"os"

	"github.com/pseudomuto/snowdiff/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// The config file is optional. A nil Config is provided when it doesn't exist so that commands
	// given explicit paths still work.
	func() (*Config, error) {
		path := os.Getenv(consts.EnvPrefix + "CONFIG")
		if path == "" {
			path = consts.DefaultConfigFile
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(path)
	},
))
