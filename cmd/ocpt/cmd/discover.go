package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/opendfg/ocpt/internal/pipeline"
)

// metricsOutput is the stdout JSON shape spec §6 names for the metrics
// output: fitness/precision/f_score/num_traces/num_executions.
type metricsOutput struct {
	Fitness       float64 `json:"fitness"`
	Precision     float64 `json:"precision"`
	FScore        float64 `json:"f_score"`
	NumTraces     int     `json:"num_traces"`
	NumExecutions int     `json:"num_executions"`
	Truncated     bool    `json:"truncated"`
}

type dfgCache struct {
	Edges []dfgEdge `json:"edges"`
	Start []string  `json:"start"`
	End   []string  `json:"end"`
}

type dfgEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

func runDiscover(_ *cobra.Command, args []string) error {
	basename := args[0]

	data, err := os.ReadFile(basename + ".json")
	if err != nil {
		return fmt.Errorf("ocpt: read %s.json: %w", basename, err)
	}

	res, err := pipeline.Run(data, cfg, permissive, logger)
	if err != nil {
		return fmt.Errorf("ocpt: %w", err)
	}

	if err := writeCacheFiles(basename, res); err != nil {
		logger.Warn().Err(err).Msg("failed to write conformance_files cache")
	}

	treeJSON, err := json.MarshalIndent(res.Tree, "", "  ")
	if err != nil {
		return fmt.Errorf("ocpt: marshal tree: %w", err)
	}
	metricsJSON, err := json.MarshalIndent(metricsOutput{
		Fitness:       res.Metrics.Fitness,
		Precision:     res.Metrics.Precision,
		FScore:        res.Metrics.FScore,
		NumTraces:     res.Metrics.NumTraces,
		NumExecutions: res.Metrics.NumExecutions,
		Truncated:     res.Metrics.Truncated,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("ocpt: marshal metrics: %w", err)
	}

	fmt.Printf("%s\n%s\n", treeJSON, metricsJSON)
	for _, w := range res.Warnings {
		logger.Warn().Msg(w)
	}

	return nil
}

// writeCacheFiles writes the non-authoritative conformance_files/ cache
// (spec §6, SPEC_FULL §12.4): the DFG, the interaction patterns, and the
// discovered tree, each as its own JSON file.
func writeCacheFiles(basename string, res *pipeline.Result) error {
	dir := "conformance_files"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	edges := res.DFG.Graph.Edges()
	dfgOut := dfgCache{Edges: make([]dfgEdge, 0, len(edges)), Start: res.DFG.Start, End: res.DFG.End}
	for _, e := range edges {
		dfgOut.Edges = append(dfgOut.Edges, dfgEdge{From: e.From, To: e.To, Weight: e.Weight})
	}

	if err := writeJSON(filepath.Join(dir, basename+"-dfg.json"), dfgOut); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, basename+"-patterns.json"), res.Patterns); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, basename+"-tree.json"), res.Tree); err != nil {
		return err
	}

	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}
