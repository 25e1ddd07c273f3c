package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/internal/config"
	"github.com/katalvlaran/pennant/internal/logging"
	"github.com/katalvlaran/pennant/schedule"
)

// app holds what PersistentPreRunE resolves for the subcommands.
type app struct {
	configPath string
	cfg        config.Config
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "pennant",
		Short:         "Decide baseball elimination with max-flow certificates",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	pf.String("algorithm", "", "max-flow algorithm: edmonds-karp, ford-fulkerson or dinic")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: console or json")
	pf.Int("workers", 0, "teams decided concurrently")

	root.AddCommand(newEliminateCmd(a), newVerifyCmd(a))

	return root
}

// engine loads the division in path and wires an Engine from the config.
func (a *app) engine(path string) (*elimination.Engine, error) {
	repo, err := schedule.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("file", path).Int("teams", repo.TeamCount()).Msg("division loaded")

	return elimination.NewEngine(repo,
		elimination.WithAlgorithm(a.cfg.FlowAlgorithm()),
		elimination.WithLogger(a.logger),
		elimination.WithVerboseFlow(a.logger.GetLevel() <= zerolog.TraceLevel),
		elimination.WithWorkers(a.cfg.Workers),
	), nil
}
