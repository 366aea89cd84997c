package model

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
)

// Kind tags a TreeNode's role. Operators are modeled as a closed tagged
// variant (spec §9) rather than a polymorphic class hierarchy.
type Kind uint8

const (
	// KindActivity is a non-silent leaf; TreeNode.Activity names it.
	KindActivity Kind = iota
	// KindTau is the silent leaf.
	KindTau
	// KindSequence is a binary sequence operator.
	KindSequence
	// KindExclusive is a binary exclusive-choice operator.
	KindExclusive
	// KindParallel is a binary concurrency operator.
	KindParallel
	// KindRedo is a binary redo-loop operator: children are (body, repeat-body).
	KindRedo
)

// reservedLabels are the literal operator/silent labels used on the wire
// (spec §6); leaf labels are activity names and never collide with these as
// long as the source log never names an activity one of these literals.
const (
	LabelSequence  = "sequence"
	LabelExclusive = "exclusive"
	LabelParallel  = "parallel"
	LabelRedo      = "redo"
	LabelTau       = "tau"
)

// TreeNode is a node of an object-centric process tree.
//
// Internal invariants (spec §3): sequence/exclusive/parallel nodes have
// exactly two children in this implementation (the spec allows binary
// trees only); redo has exactly two children (body, repeat-body); tau and
// activity leaves have zero children.
type TreeNode struct {
	ID       uuid.UUID
	Kind     Kind
	Activity string // meaningful only when Kind == KindActivity

	// Interaction supplements the node with Component B's interaction-set
	// annotation for this activity (original_source's OCPTLeaf carried
	// this; spec.md's distillation dropped it — see SPEC_FULL.md §12).
	// Nil for operator nodes and for activities with no recorded sets.
	Interaction *ActivitySets

	Children []*TreeNode
}

// Label returns the node's wire label: the operator/tau literal, or the
// activity name for activity leaves.
func (n *TreeNode) Label() string {
	switch n.Kind {
	case KindSequence:
		return LabelSequence
	case KindExclusive:
		return LabelExclusive
	case KindParallel:
		return LabelParallel
	case KindRedo:
		return LabelRedo
	case KindTau:
		return LabelTau
	default:
		return n.Activity
	}
}

// IsLeaf reports whether n is a tau or activity leaf.
func (n *TreeNode) IsLeaf() bool {
	return n.Kind == KindTau || n.Kind == KindActivity
}

// NewLeaf builds an activity leaf node, assigning a fresh ID.
func NewLeaf(activity string, sets *ActivitySets) *TreeNode {
	return &TreeNode{ID: uuid.New(), Kind: KindActivity, Activity: activity, Interaction: sets}
}

// NewTau builds a silent leaf node.
func NewTau() *TreeNode {
	return &TreeNode{ID: uuid.New(), Kind: KindTau}
}

// NewOperator builds a binary operator node over the given kind and
// children. It panics if kind is not one of the four binary operator kinds
// or either child is nil — this is a programmer error in the
// caller (discover/cuts/fallback/selfloop), never a runtime input error,
// matching the teacher's convention of panicking only from constructors on
// invariant violations (builder/errors.go).
func NewOperator(kind Kind, left, right *TreeNode) *TreeNode {
	switch kind {
	case KindSequence, KindExclusive, KindParallel, KindRedo:
	default:
		panic(fmt.Sprintf("model: NewOperator called with non-operator kind %d", kind))
	}
	if left == nil || right == nil {
		panic("model: NewOperator requires two non-nil children")
	}

	return &TreeNode{ID: uuid.New(), Kind: kind, Children: []*TreeNode{left, right}}
}

// Activities returns the sorted set of distinct activity leaves under n,
// excluding tau.
func (n *TreeNode) Activities() []string {
	seen := map[string]struct{}{}
	var walk func(*TreeNode)
	walk = func(node *TreeNode) {
		if node.Kind == KindActivity {
			seen[node.Activity] = struct{}{}
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)

	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}

// treeWire is the JSON wire shape for TreeNode (spec §6): label, children,
// plus the additive id/interaction fields from SPEC_FULL.md §12.
type treeWire struct {
	ID          uuid.UUID       `json:"id"`
	Label       string          `json:"label"`
	Interaction *ActivitySets   `json:"interaction,omitempty"`
	Children    []*TreeNode     `json:"children"`
}

// MarshalJSON renders the node in the canonical {label, children} shape
// required by spec §6, with the ID and interaction annotation attached.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	children := n.Children
	if children == nil {
		children = []*TreeNode{}
	}

	return json.Marshal(treeWire{ID: n.ID, Label: n.Label(), Interaction: n.Interaction, Children: children})
}

// UnmarshalJSON reconstructs a TreeNode from its wire shape, inferring Kind
// from Label.
func (n *TreeNode) UnmarshalJSON(data []byte) error {
	var w treeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	n.ID = w.ID
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.Interaction = w.Interaction
	n.Children = w.Children

	switch w.Label {
	case LabelSequence:
		n.Kind = KindSequence
	case LabelExclusive:
		n.Kind = KindExclusive
	case LabelParallel:
		n.Kind = KindParallel
	case LabelRedo:
		n.Kind = KindRedo
	case LabelTau:
		n.Kind = KindTau
	default:
		n.Kind = KindActivity
		n.Activity = w.Label
	}

	return nil
}
