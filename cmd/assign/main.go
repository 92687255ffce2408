package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"league-former/internal/app/assign"
	"league-former/internal/config"
	"league-former/internal/logging"
	"league-former/internal/metrics"
	"league-former/internal/report"
	"league-former/internal/server"
	"league-former/internal/snapshots"
	"league-former/internal/store"
)

const (
	inputFlag      = "input-stem"
	outputFlag     = "output-stem"
	weightsFlag    = "config"
	depthFlag      = "depth"
	statusAddrFlag = "status-addr"
	metricsFlag    = "metrics"
)

const appVersion = "dev"

func main() {
	var inputStem string
	var outputStem string
	var weightsPath string

	cfg := config.Load()

	app := &cli.App{
		Name:    "league-former",
		Usage:   "Assign youth league players to balanced teams",
		Version: appVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        inputFlag,
				Aliases:     []string{"i"},
				Usage:       "Stem of the input CSVs ({stem}-players.csv, {stem}-teams.csv)",
				Destination: &inputStem,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "Stem of the output CSVs to write after the run",
				Destination: &outputStem,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        weightsFlag,
				Aliases:     []string{"c"},
				Usage:       "Path to a YAML weights file (defaults built in)",
				Destination: &weightsPath,
				Value:       cfg.WeightsFile,
			},
			&cli.IntFlag{
				Name:        depthFlag,
				Usage:       "Lookahead depth for the move search",
				Destination: &cfg.Depth,
				Value:       cfg.Depth,
			},
			&cli.StringFlag{
				Name:        statusAddrFlag,
				Usage:       "Serve /healthz, /status and /metrics on this address while running",
				Destination: &cfg.StatusAddr,
				Value:       cfg.StatusAddr,
			},
			&cli.BoolFlag{
				Name:        metricsFlag,
				Usage:       "Enable telemetry export",
				Destination: &cfg.Metrics.Enabled,
				Value:       cfg.Metrics.Enabled,
			},
		},
		Action: func(cCtx *cli.Context) error {
			return run(cCtx.Context, cfg, inputStem, outputStem, weightsPath)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, inputStem, outputStem, weightsPath string) error {
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "league-former",
		Version: appVersion,
	})

	weights, fileDepth, err := config.LoadWeights(weightsPath)
	if err != nil {
		return fmt.Errorf("loading weights: %w", err)
	}
	if fileDepth > 0 {
		cfg.Depth = fileDepth
	}

	fs := snapshots.NewFSStore()
	teams, err := fs.LoadTeams(inputStem)
	if err != nil {
		return fmt.Errorf("loading teams: %w", err)
	}
	records, err := fs.LoadPlayers(inputStem)
	if err != nil {
		return fmt.Errorf("loading players: %w", err)
	}
	logging.Info(logger, "snapshots loaded",
		slog.Int(logging.FieldCount, len(records)),
		slog.Int("teams", len(teams)),
	)

	league, err := assign.BuildLeague(teams, records, weights)
	if err != nil {
		return fmt.Errorf("building league: %w", err)
	}

	recorder, metricsHandler, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		if err := metricsStop(context.Background()); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	progress := store.NewProgressStore()
	var statusSrv *server.Server
	if cfg.StatusAddr != "" {
		statusSrv = server.New(cfg.StatusAddr, progress, metricsHandler, logger)
		statusSrv.Start()
		defer func() {
			if err := statusSrv.Shutdown(context.Background()); err != nil {
				logging.Warn(logger, "status server shutdown failed", "error", err)
			}
		}()
	}

	svc := assign.NewService(league, cfg.Depth, logger, recorder, progress)
	if err := svc.Run(ctx); err != nil {
		return err
	}

	composite, ok := league.Scorer().(report.SubScorer)
	if ok {
		report.Log(logger, league, composite)
		if err := report.Write(os.Stdout, league, composite); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if err := fs.SavePlayers(outputStem, league); err != nil {
		return fmt.Errorf("saving players: %w", err)
	}
	if err := fs.SaveTeams(outputStem, league); err != nil {
		return fmt.Errorf("saving teams: %w", err)
	}
	logging.Info(logger, "snapshots written",
		slog.String("players", fs.PlayersPath(outputStem)),
		slog.String("teams", fs.TeamsPath(outputStem)),
	)
	return nil
}
