package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pdrpinto/hybridastar"
	"github.com/pdrpinto/hybridastar/internal/cli"
	"github.com/pdrpinto/hybridastar/internal/ctxlog"
	"github.com/pdrpinto/hybridastar/internal/scenario"
	"github.com/pdrpinto/hybridastar/observability"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type jsonPose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

type jsonResult struct {
	Scenario    string     `json:"scenario"`
	Goal        jsonPose   `json:"goal"`
	GoalRadius  float64    `json:"goal_radius"`
	SearchID    string     `json:"search_id"`
	Status      string     `json:"status"`
	Found       bool       `json:"found"`
	Approximate bool       `json:"approximate"`
	Cost        float64    `json:"cost"`
	Expansions  int        `json:"expansions"`
	Discarded   int        `json:"discarded"`
	Closed      int        `json:"closed"`
	Path        []jsonPose `json:"path"`
}

// run loads the scenario, solves it and writes the result to outW. Logs go
// to logW. A search that ends without reaching the goal is reported with
// exit code 3 after the result has been written.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(config.LogLevel, config.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	sc, err := scenario.Load(ctx, config.ScenarioPath)
	if err != nil {
		return err
	}

	timeout := sc.Timeout
	if config.Timeout > 0 {
		timeout = config.Timeout
	}
	deadline := &hybridastar.FlagSignal{}
	if timeout > 0 {
		timer := time.AfterFunc(timeout, deadline.Set)
		defer timer.Stop()
	}

	logger.Info("Solving scenario.", "scenario", sc.Name, "timeout", timeout)
	result, searchErr := hybridastar.Solve(ctx, sc.Problem(deadline), sc.Config,
		hybridastar.WithObserver(observability.NewSlogObserver(logger)),
	)
	if errors.Is(searchErr, hybridastar.ErrInvalidConfig) {
		return searchErr
	}

	switch config.OutputFormat {
	case "json":
		err = writeJSON(outW, sc, result)
	default:
		err = writeText(outW, sc, result, config.ShowMap)
	}
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if searchErr != nil {
		return &cli.ExitError{Code: 3, Message: searchErr.Error()}
	}
	return nil
}

func writeJSON(outW io.Writer, sc *scenario.Scenario, result hybridastar.Result) error {
	out := jsonResult{
		Scenario:    sc.Name,
		Goal:        jsonPose{X: sc.Goal.Target.X, Y: sc.Goal.Target.Y, Heading: sc.Goal.Target.Heading},
		GoalRadius:  sc.Radius,
		SearchID:    result.SearchID,
		Status:      result.Status.String(),
		Found:       result.Found(),
		Approximate: result.Approximate,
		Cost:        result.Cost,
		Expansions:  result.Expansions,
		Discarded:   result.Discarded,
		Closed:      result.Closed,
		Path:        make([]jsonPose, 0, len(result.Path)),
	}
	for _, pose := range result.Path {
		out.Path = append(out.Path, jsonPose{X: pose.X, Y: pose.Y, Heading: pose.Heading})
	}
	encoder := json.NewEncoder(outW)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func writeText(outW io.Writer, sc *scenario.Scenario, result hybridastar.Result, showMap bool) error {
	kind := "path"
	if result.Approximate {
		kind = "approximate path"
	}
	if _, err := fmt.Fprintf(outW, "scenario: %s\ngoal: %s radius %g\nstatus: %s\nexpansions: %d discarded: %d closed: %d\n",
		sc.Name, sc.Goal.Target, sc.Radius, result.Status, result.Expansions, result.Discarded, result.Closed); err != nil {
		return err
	}
	if len(result.Path) > 0 {
		if _, err := fmt.Fprintf(outW, "%s (%d poses, cost %.3f):\n", kind, len(result.Path), result.Cost); err != nil {
			return err
		}
		for _, pose := range result.Path {
			if _, err := fmt.Fprintf(outW, "  %s\n", pose); err != nil {
				return err
			}
		}
	}
	if showMap {
		if _, err := fmt.Fprint(outW, sc.Grid.Dump(result.Path)); err != nil {
			return err
		}
	}
	return nil
}
