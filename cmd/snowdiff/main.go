package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pseudomuto/snowdiff/pkg/cmd"
	"github.com/pseudomuto/snowdiff/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	// A missing .env file is fine, SNOWDIFF_* variables may come from the environment.
	_ = godotenv.Load()

	app := fx.New(
		fx.NopLogger,
		// Commands run inside the start hook
		fx.StartTimeout(time.Hour),
		fx.Supply(
			os.Args,
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	)

	app.Run()
}
