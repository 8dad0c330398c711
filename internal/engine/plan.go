package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/tileplan/internal/planfile"
	"github.com/danieljhkim/tileplan/internal/planner"
)

// PlanRectangle computes a fill plan for a rectangular region and, unless
// the request is a dry run, writes the plan document to the plans
// directory.
func (e *Engine) PlanRectangle(ctx context.Context, req PlanRectangleRequest) (*PlanRectangleResult, error) {
	snapshot, err := e.snapshotAround(ctx, req.Bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to load generated quadrants: %w", err)
	}

	plan, err := planner.CreateRectanglePlan(req.Bounds, snapshot)
	if err != nil {
		return nil, err
	}

	doc := planfile.NewRectangleDocument(plan, e.clock.Now())
	result := &PlanRectangleResult{
		Document: doc,
		Summary:  planner.SummarizeRectangle(plan),
	}

	if !req.DryRun {
		path, err := planfile.Save(e.paths.Plans, doc)
		if err != nil {
			return nil, err
		}
		result.Path = path
	}

	e.log.Info("planned rectangle",
		zap.String("bounds", req.Bounds.String()),
		zap.Int("steps", len(plan.Steps)),
		zap.Int("pre_generated", len(plan.PreGenerated)),
		zap.Bool("dry_run", req.DryRun))
	return result, nil
}

// PlanStrip computes an expansion plan for a strip. When the request
// names no edge, the side fully adjacent to generated content is
// detected; naming an edge whose exterior is not fully generated is an
// error.
func (e *Engine) PlanStrip(ctx context.Context, req PlanStripRequest) (*PlanStripResult, error) {
	snapshot, err := e.snapshotAround(ctx, req.Bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to load generated quadrants: %w", err)
	}

	var edge planner.Edge
	if req.Edge == "" {
		edge, err = planner.FindGenerationEdge(req.Bounds, snapshot)
		if err != nil {
			return nil, err
		}
	} else {
		edge, err = planner.ParseEdge(req.Edge)
		if err != nil {
			return nil, err
		}
	}

	plan, err := planner.CreateStripPlan(req.Bounds, edge, snapshot)
	if err != nil {
		return nil, err
	}

	doc := planfile.NewStripDocument(plan, e.clock.Now())
	result := &PlanStripResult{
		Document: doc,
		Edge:     edge,
		Summary:  planner.SummarizeStrip(plan),
	}

	if !req.DryRun {
		path, err := planfile.Save(e.paths.Plans, doc)
		if err != nil {
			return nil, err
		}
		result.Path = path
	}

	e.log.Info("planned strip",
		zap.String("bounds", req.Bounds.String()),
		zap.String("edge", string(edge)),
		zap.Int("steps", len(plan.Steps)),
		zap.Bool("dry_run", req.DryRun))
	return result, nil
}
