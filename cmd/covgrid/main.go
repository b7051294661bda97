// Command covgrid plans coverage flights for a fleet of agents over a
// surveyed area described by a QGC WPL mission file, and emits one
// routed mission file per agent.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/palebrook/covgrid/internal/config"
	"github.com/palebrook/covgrid/mission"
	"github.com/palebrook/covgrid/plan"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		inputPath  = flag.String("input", "", "input QGC WPL mission file (required)")
		outputDir  = flag.String("output", ".", "directory to write per-agent mission files into")
		configPath = flag.String("config", "", "optional YAML override file")
		dim        = flag.Float64("dim", 0, "cell side, meters")
		lambda     = flag.Float64("lambda", 0, "distance weight")
		gamma      = flag.Float64("gamma", 0, "turn weight (0 disables the turn penalty entirely)")
		kappa      = flag.Int64("kappa", 0, "forbidden-edge sentinel (0 = use default/config)")
		pcs        = flag.Int64("pcs", 0, "integer cost scale (0 = use default/config)")
		gap        = flag.Float64("gap", 0, "solver MIP gap tolerance")
		limitSec   = flag.Int("limit", 0, "solver time limit, seconds (0 = use default/config)")
	)
	flag.Parse()

	if *inputPath == "" {
		return errors.New("covgrid: -input is required")
	}

	// flag.Visit only reports flags explicitly passed on the command
	// line, distinguishing "-gamma=0" from "-gamma not given" — both
	// report *gamma == 0, but only the former should override the
	// config file or default.
	explicitFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicitFlags[f.Name] = true })

	overrides, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	opts := plan.DefaultOptions()
	applyOverride(&opts.Dim, overrides.Dim, dim, explicitFlags["dim"])
	applyOverride(&opts.Lambda, overrides.Lambda, lambda, explicitFlags["lambda"])
	applyOverride(&opts.Gamma, overrides.Gamma, gamma, explicitFlags["gamma"])
	applyOverride(&opts.Gap, overrides.Gap, gap, explicitFlags["gap"])
	applyOverrideInt64(&opts.Kappa, overrides.Kappa, *kappa)
	applyOverrideInt64(&opts.PCS, overrides.PCS, *pcs)
	if overrides.LimitSeconds > 0 {
		opts.Limit = time.Duration(overrides.LimitSeconds) * time.Second
	}
	if *limitSec > 0 {
		opts.Limit = time.Duration(*limitSec) * time.Second
	}
	if overrides.Concurrency > 0 {
		opts.Concurrency = overrides.Concurrency
	}

	logLevel := parseLogLevel(overrides.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	f, err := os.Open(*inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	missionFile, err := mission.LoadMission(f)
	if err != nil {
		if errors.Is(err, mission.ErrUnsupportedVersion) {
			slog.Warn("mission file version unsupported, no planning performed", "path", *inputPath)

			return nil
		}

		return fmt.Errorf("loading mission: %w", err)
	}

	areas, starts, err := mission.ParseAreasAndStarts(missionFile)
	if err != nil {
		return fmt.Errorf("parsing mission: %w", err)
	}

	result, err := plan.Run(ctx, areas, starts, opts, slog.Default())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for i, agent := range result.Agents {
		wps := mission.EmitAgentMission(agent.Ordered)
		outPath := filepath.Join(*outputDir, fmt.Sprintf("mission_%d.txt", i))

		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating mission_%d.txt: %w", i, err)
		}
		err = mission.WriteMission(out, wps)
		closeErr := out.Close()
		if err != nil {
			return fmt.Errorf("writing mission_%d.txt: %w", i, err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing mission_%d.txt: %w", i, closeErr)
		}
	}

	return nil
}

// applyOverride layers configVal (if present) then flagVal (if the flag
// was explicitly passed) onto *dst, so an explicit zero — e.g.
// "-gamma=0" or a YAML "gamma: 0" — takes effect instead of being
// mistaken for "not set".
func applyOverride(dst *float64, configVal *float64, flagVal *float64, flagSet bool) {
	if configVal != nil {
		*dst = *configVal
	}
	if flagSet {
		*dst = *flagVal
	}
}

func applyOverrideInt64(dst *int64, configVal, flagVal int64) {
	if configVal != 0 {
		*dst = configVal
	}
	if flagVal != 0 {
		*dst = flagVal
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
