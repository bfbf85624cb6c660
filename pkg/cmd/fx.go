package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(clean, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(diff, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(objects, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
