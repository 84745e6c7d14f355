// Package commands implements the latticewalk subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/explorer"
	"github.com/katalvlaran/latticewalk/internal/config"
)

// Flag names shared by the search commands.
const (
	configFlag     = "config"
	targetFlag     = "target"
	initialMaxFlag = "initial-max"
	pacingFlag     = "pacing"
	batchFlag      = "batch"
	maxRoundsFlag  = "max-rounds"
	noColorFlag    = "no-color"
	logLevelFlag   = "log-level"
	logFormatFlag  = "log-format"
)

// addSearchFlags registers the flags every search command understands.
// Defaults live in internal/config; flags only override when set.
func addSearchFlags(cmd *cobra.Command, configPath *string) {
	f := cmd.Flags()
	f.StringVarP(configPath, configFlag, "c", "", "path to a YAML config file")
	f.IntP(targetFlag, "t", 8, "digit-sum target")
	f.Int(initialMaxFlag, 10, "initial extent reported before discovery")
	f.String(pacingFlag, "frontier", "batch policy: frontier, fixed or drain")
	f.Int(batchFlag, 64, "points per round for --pacing fixed")
	f.Int(maxRoundsFlag, 0, "stop after this many rounds (0 = no limit)")
	f.Bool(noColorFlag, false, "disable coloured output")
	f.String(logLevelFlag, "warn", "log level: debug, info, warn, error")
	f.String(logFormatFlag, "text", "log format: text or json")
}

// search bundles a configured explorer with its logger.
type search struct {
	cfg      *config.Config
	logger   *slog.Logger
	explorer *explorer.Explorer
}

// newSearch loads configuration and builds an explorer from it. Every log
// record carries a fresh run_id.
func newSearch(cmd *cobra.Command, configPath string) (*search, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	logger, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	logger = logger.With("run_id", uuid.NewString())

	pacing, err := cfg.Pacing()
	if err != nil {
		return nil, err
	}
	e, err := explorer.New(cfg.Search.Target, cfg.Search.InitialMax,
		explorer.WithPacing(pacing),
		explorer.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create explorer: %w", err)
	}
	logger.Info("search started",
		"target", cfg.Search.Target,
		"initial_max", cfg.Search.InitialMax,
		"pacing", pacing.Name(),
	)

	return &search{cfg: cfg, logger: logger, explorer: e}, nil
}

// drive resumes the explorer until it finishes or MaxRounds is reached.
func (s *search) drive(ctx context.Context, visit func(explorer.Snapshot)) (explorer.Snapshot, error) {
	limit := s.cfg.Search.MaxRounds

	return explorer.Drive(ctx, s.explorer, func(snap explorer.Snapshot) error {
		visit(snap)
		if limit > 0 && snap.Round >= limit && !snap.Final {
			s.logger.Warn("round limit reached", "rounds", snap.Round)
			return explorer.ErrStop
		}

		return nil
	})
}
