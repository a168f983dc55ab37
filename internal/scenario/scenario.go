// Package scenario loads planning problems from HCL files.
//
// A scenario describes the planner configuration, the obstacle map, the
// start pose(s) and the goal region:
//
//	planner {
//	  heading_deltas = [radians(-45), 0, radians(45)]
//	  step_length    = sqrt2
//	  heading_bucket = pi / 4
//	}
//
//	map {
//	  resolution = 1
//	  rows = [
//	    "......",
//	    "..##..",
//	    "......",
//	  ]
//	}
//
//	start {
//	  x = 0.5
//	  y = 0.5
//	}
//
//	goal {
//	  x      = 5.5
//	  y      = 0.5
//	  radius = 1
//	}
//
// Expressions may use the variables pi and sqrt2 and the functions
// radians() and degrees(). Angles are in radians.
package scenario

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/pdrpinto/hybridastar"
	"github.com/pdrpinto/hybridastar/internal"
	"github.com/pdrpinto/hybridastar/internal/ctxlog"
	"github.com/pdrpinto/hybridastar/internal/occupancy"
)

// Scenario is a fully decoded planning problem.
type Scenario struct {
	Name    string
	Config  hybridastar.Config
	Grid    *occupancy.Grid
	Starts  hybridastar.Starts
	Goal    hybridastar.Goal
	Radius  float64
	Timeout time.Duration
}

// Problem builds the search problem. termination may be nil.
func (s *Scenario) Problem(termination hybridastar.TerminationSignal) hybridastar.Problem {
	return hybridastar.Problem{
		Starts:      s.Starts,
		Validity:    s.Grid,
		Goal:        s.Goal,
		Termination: termination,
	}
}

type fileRoot struct {
	Name    string        `hcl:"name,optional"`
	Timeout string        `hcl:"timeout,optional"`
	Planner *plannerBlock `hcl:"planner,block"`
	Map     *mapBlock     `hcl:"map,block"`
	Starts  []*poseBlock  `hcl:"start,block"`
	Goal    *goalBlock    `hcl:"goal,block"`
}

type plannerBlock struct {
	HeadingDeltas []float64 `hcl:"heading_deltas,optional"`
	StepLength    float64   `hcl:"step_length,optional"`
	CellSize      float64   `hcl:"cell_size,optional"`
	HeadingBucket float64   `hcl:"heading_bucket,optional"`
	ExactOnly     bool      `hcl:"exact_only,optional"`
}

type mapBlock struct {
	Resolution float64  `hcl:"resolution,optional"`
	Rows       []string `hcl:"rows"`
}

type poseBlock struct {
	X       float64 `hcl:"x"`
	Y       float64 `hcl:"y"`
	Heading float64 `hcl:"heading,optional"`
}

type goalBlock struct {
	X       float64 `hcl:"x"`
	Y       float64 `hcl:"y"`
	Heading float64 `hcl:"heading,optional"`
	Radius  float64 `hcl:"radius"`
}

// Load reads and decodes the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(ctx, src, path)
}

// Parse decodes scenario source. filename is only used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing scenario.", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}

	scenario, err := translate(&root)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", filename, err)
	}
	if scenario.Name == "" {
		scenario.Name = filename
	}

	logger.Debug("Scenario loaded.",
		"name", scenario.Name,
		"width", scenario.Grid.Width,
		"height", scenario.Grid.Height,
		"starts", len(scenario.Starts),
	)
	return scenario, nil
}

func translate(root *fileRoot) (*Scenario, error) {
	if root.Map == nil {
		return nil, fmt.Errorf("missing map block")
	}
	if root.Goal == nil {
		return nil, fmt.Errorf("missing goal block")
	}

	cfg := hybridastar.DefaultConfig()
	if root.Planner != nil {
		cfg.Merge(&hybridastar.Config{
			HeadingDeltas:      root.Planner.HeadingDeltas,
			StepLength:         root.Planner.StepLength,
			CellSize:           root.Planner.CellSize,
			HeadingBucketWidth: root.Planner.HeadingBucket,
			ExactOnly:          root.Planner.ExactOnly,
		})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolution := root.Map.Resolution
	if resolution == 0 {
		resolution = 1
	}
	grid, err := occupancy.Parse(root.Map.Rows, resolution)
	if err != nil {
		return nil, err
	}

	if !(root.Goal.Radius >= 0) {
		return nil, fmt.Errorf("goal radius must not be negative, got %v", root.Goal.Radius)
	}
	target := hybridastar.NewPose(root.Goal.X, root.Goal.Y, root.Goal.Heading)

	var timeout time.Duration
	if root.Timeout != "" {
		timeout, err = time.ParseDuration(root.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
	}

	starts := make(hybridastar.Starts, 0, len(root.Starts))
	for _, start := range root.Starts {
		starts = append(starts, hybridastar.NewPose(start.X, start.Y, start.Heading))
	}

	return &Scenario{
		Name:    root.Name,
		Config:  cfg,
		Grid:    grid,
		Starts:  starts,
		Goal:    hybridastar.GoalRegion(target, root.Goal.Radius),
		Radius:  root.Goal.Radius,
		Timeout: timeout,
	}, nil
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi":    cty.NumberFloatVal(math.Pi),
			"sqrt2": cty.NumberFloatVal(math.Sqrt2),
		},
		Functions: map[string]function.Function{
			"radians": angleFunction("degrees", internal.Radians),
			"degrees": angleFunction("radians", internal.Degrees),
		},
	}
}

func angleFunction(param string, convert func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{Name: param, Type: cty.Number}},
		Type:   function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			value, _ := args[0].AsBigFloat().Float64()
			return cty.NumberFloatVal(convert(value)), nil
		},
	})
}
