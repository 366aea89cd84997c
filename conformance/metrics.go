package conformance

import "github.com/opendfg/ocpt/model"

// DefaultRedoDepth is the default redo-unroll depth (spec §9 Open
// Question, resolved in SPEC_FULL.md §14): two repetitions of the
// loop body beyond the first.
const DefaultRedoDepth = 2

// DefaultExecutionCeiling is the default overflow ceiling (spec §7).
const DefaultExecutionCeiling = 1_000_000

// Options configures Evaluate. A zero Options uses the defaults.
type Options struct {
	RedoDepth        int
	ExecutionCeiling int
}

func (o Options) resolved() Options {
	if o.RedoDepth <= 0 {
		o.RedoDepth = DefaultRedoDepth
	}
	if o.ExecutionCeiling <= 0 {
		o.ExecutionCeiling = DefaultExecutionCeiling
	}

	return o
}

// Metrics is the conformance result (spec §6): fitness, precision, and
// F-score in [0,1], plus the trace/execution counts the scores were
// computed over.
type Metrics struct {
	Fitness       float64
	Precision     float64
	FScore        float64
	NumTraces     int
	NumExecutions int
	Truncated     bool
}

// Evaluate scores tree against traces (spec §4.9): traces are first
// normalized and filtered (repeated-non-self-loop traces dropped), the
// tree's language is enumerated up to opts.ExecutionCeiling distinct
// sequences unrolling redo nodes opts.RedoDepth times, and fitness /
// precision / F-score are computed from set membership both ways.
//
// When the ceiling truncates enumeration, Evaluate still returns a usable
// Metrics (Truncated set, Precision an upper bound per spec §7) alongside
// ErrTooLarge, which callers may log and otherwise ignore.
func Evaluate(tree *model.TreeNode, traces []model.Trace, selfLoopActivities []string, opts Options) (Metrics, error) {
	opts = opts.resolved()

	normalized := make([][]string, 0, len(traces))
	for _, tr := range traces {
		if seq, ok := NormalizeTrace(tr, selfLoopActivities); ok {
			normalized = append(normalized, seq)
		}
	}

	execSet := Executions(tree, opts.RedoDepth, opts.ExecutionCeiling)

	execIndex := make(map[string]struct{}, len(execSet.Sequences))
	for _, seq := range execSet.Sequences {
		execIndex[joinSeq(seq)] = struct{}{}
	}
	traceIndex := make(map[string]struct{}, len(normalized))
	for _, seq := range normalized {
		traceIndex[joinSeq(seq)] = struct{}{}
	}

	var fitMatches int
	for _, seq := range normalized {
		if _, ok := execIndex[joinSeq(seq)]; ok {
			fitMatches++
		}
	}
	var precMatches int
	for _, seq := range execSet.Sequences {
		if _, ok := traceIndex[joinSeq(seq)]; ok {
			precMatches++
		}
	}

	var fitness, precision float64
	if len(normalized) > 0 {
		fitness = float64(fitMatches) / float64(len(normalized))
	}
	if len(execSet.Sequences) > 0 {
		precision = float64(precMatches) / float64(len(execSet.Sequences))
	}

	var fscore float64
	if fitness+precision > 0 {
		fscore = 2 * fitness * precision / (fitness + precision)
	}

	metrics := Metrics{
		Fitness:       fitness,
		Precision:     precision,
		FScore:        fscore,
		NumTraces:     len(normalized),
		NumExecutions: len(execSet.Sequences),
		Truncated:     execSet.Truncated,
	}

	if execSet.Truncated {
		return metrics, ErrTooLarge
	}

	return metrics, nil
}
