package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/palebrook/covgrid/assign"
	"github.com/palebrook/covgrid/audit"
	"github.com/palebrook/covgrid/costmatrix"
	"github.com/palebrook/covgrid/decompose"
	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/graphmodel"
	"github.com/palebrook/covgrid/route"
)

// Run executes the full pipeline: decompose -> assign -> route (per
// agent) -> audit, logging one structured line per stage.
//
// Any stage failure is wrapped as fmt.Errorf("%s: %w", stage, err) so the
// caller (cmd/covgrid) can report both the stage and the underlying
// sentinel without re-deriving it.
func Run(ctx context.Context, areas geo.AreaSet, starts []geo.Point, opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()

	cells, err := decompose.Decompose(areas, decompose.Options{Dim: opts.Dim})
	if err != nil {
		return Result{}, fmt.Errorf("decompose: %w", err)
	}
	logger.Info("stage complete", "stage", "decompose", "cells", len(cells), "elapsed_s", time.Since(start).Seconds())

	graphStart := time.Now()
	g, err := graphmodel.NewNodeGraph(cells, opts.Dim)
	if err != nil {
		return Result{}, fmt.Errorf("graphmodel: %w", err)
	}
	logger.Info("stage complete", "stage", "graphmodel", "nodes", g.VertexCount(), "elapsed_s", time.Since(graphStart).Seconds())

	assignStart := time.Now()
	centers := make([]geo.Point, g.VertexCount())
	for i := range centers {
		centers[i] = g.Center(i)
	}
	assignResult, err := assign.Assign(starts, centers, assign.Options{TimeLimit: opts.Limit, Eps: 1e-9})
	if err != nil {
		return Result{}, fmt.Errorf("assign: %w", err)
	}
	logger.Info("stage complete", "stage", "assign", "z", assignResult.Z, "elapsed_s", time.Since(assignStart).Seconds())

	agents := make([]AgentPlan, len(starts))

	routeOne := func(a int) error {
		agentStart := time.Now()
		subset := assignResult.Assignment[a]

		agentCenters := make([]geo.Point, len(subset))
		for k, node := range subset {
			agentCenters[k] = centers[node]
		}

		ten, err := costmatrix.Build(g, subset, costmatrix.Options{Dim: opts.Dim, PCS: opts.PCS, Kappa: opts.Kappa})
		if err != nil {
			return fmt.Errorf("costmatrix[%d]: %w", a, err)
		}

		depotLocal := route.SelectDepot(starts[a], agentCenters)

		result, err := route.Solve(depotLocal, ten, route.Options{Lambda: opts.Lambda, Gamma: opts.Gamma, TimeLimit: opts.Limit, Eps: 1e-9})
		if err != nil {
			return fmt.Errorf("route[%d]: %w", a, err)
		}

		ordered := make([]geo.Point, 0, len(subset))
		cur := depotLocal
		for i := 0; i < len(subset); i++ {
			ordered = append(ordered, agentCenters[cur])
			cur = result.Tour[cur]
		}

		stats, err := audit.Walk(depotLocal, result.Tour, agentCenters, opts.Dim)
		if err != nil {
			return fmt.Errorf("audit[%d]: %w", a, err)
		}

		agents[a] = AgentPlan{
			Start:   starts[a],
			Depot:   agentCenters[depotLocal],
			Ordered: ordered,
			Stats:   stats,
		}

		logger.Info("stage complete", "stage", "route", "agent", a, "nodes", len(subset), "elapsed_s", time.Since(agentStart).Seconds())

		return nil
	}

	if opts.Concurrency <= 1 {
		for a := range starts {
			if err := routeOne(a); err != nil {
				return Result{}, err
			}
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(opts.Concurrency)
		for a := range starts {
			a := a
			eg.Go(func() error {
				select {
				case <-egCtx.Done():
					return egCtx.Err()
				default:
				}

				return routeOne(a)
			})
		}
		if err := eg.Wait(); err != nil {
			return Result{}, err
		}
	}

	logger.Info("plan complete", "agents", len(agents), "elapsed_s", time.Since(start).Seconds())

	return Result{Agents: agents}, nil
}
