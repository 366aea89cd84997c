// Package pipeline wires Components A through I into the single run the
// rest of the engine drives (spec §2's component table): parse an OCEL
// log, flatten and trace it, derive interaction patterns and the DFG,
// discover a process tree, rewrite its self-loops, and score it for
// conformance.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opendfg/ocpt/conformance"
	"github.com/opendfg/ocpt/dfg"
	"github.com/opendfg/ocpt/discover"
	"github.com/opendfg/ocpt/fallback"
	"github.com/opendfg/ocpt/internal/config"
	"github.com/opendfg/ocpt/model"
	"github.com/opendfg/ocpt/ocel"
	"github.com/opendfg/ocpt/patterns"
	"github.com/opendfg/ocpt/relations"
	"github.com/opendfg/ocpt/selfloop"
)

// Result is everything a single Run produces: the intermediate artifacts
// worth caching (spec §6's conformance_files/ outputs) plus the final
// tree and metrics.
type Result struct {
	DFG      *dfg.Result
	Patterns *model.Patterns
	Tree     *model.TreeNode
	Metrics  conformance.Metrics
	Warnings []string
}

// Run executes the full discovery-and-conformance pipeline over data (a
// raw OCEL JSON document) using cfg's tunables. permissive controls both
// ocel.Parse's and relations.Build's tolerance for dangling object
// references.
func Run(data []byte, cfg *config.Config, permissive bool, logger zerolog.Logger) (*Result, error) {
	parsed, err := ocel.Parse(data, ocel.ParseOptions{Permissive: permissive})
	if err != nil {
		return nil, fmt.Errorf("pipeline: parse: %w", err)
	}

	rel, err := relations.Build(parsed.Log, permissive)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build relations: %w", err)
	}

	warnings := append(append([]string{}, parsed.Warnings...), rel.Warnings...)

	traces := relations.Traces(rel.Relations)
	pat := patterns.Build(rel.Relations)
	dfgResult := dfg.Build(traces, pat)

	costFn := fallback.UnitCost
	if cfg.Discovery.FallbackCostModel == config.FallbackCostDataDriven {
		costFn = fallback.NewDataDrivenCostForGraph(traces, dfgResult.Graph)
	}

	tree := discover.Discover(dfgResult, pat, costFn, logger)
	tree = selfloop.Rewrite(tree, dfgResult.Graph, traces)

	selfLoopActivities := selfloop.SelfLoopActivities(dfgResult.Graph)
	metrics, confErr := conformance.Evaluate(tree, traces, selfLoopActivities, conformance.Options{
		RedoDepth:        cfg.Discovery.RedoUnrollDepth,
		ExecutionCeiling: cfg.Conformance.ExecutionCeiling,
	})
	if confErr != nil {
		logger.Warn().Err(confErr).Msg("conformance enumeration truncated")
	}

	return &Result{
		DFG:      dfgResult,
		Patterns: pat,
		Tree:     tree,
		Metrics:  metrics,
		Warnings: warnings,
	}, nil
}
