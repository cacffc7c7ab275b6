package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// defaultBaseScore is xgboost's regression default; an artifact envelope may
// override it.
const defaultBaseScore = 0.5

// treeNode is one node of an xgboost JSON tree dump (dump_model format).
// Split nodes carry a feature reference and branch ids; leaves carry a value.
type treeNode struct {
	NodeID         int        `json:"nodeid"`
	Split          string     `json:"split,omitempty"`
	SplitCondition float64    `json:"split_condition"`
	Yes            int        `json:"yes"`
	No             int        `json:"no"`
	Missing        int        `json:"missing"`
	Leaf           *float64   `json:"leaf,omitempty"`
	Children       []treeNode `json:"children,omitempty"`

	splitIdx int
}

// modelEnvelope is the optional wrapper around a tree dump carrying scoring
// metadata. A bare JSON array of trees is also accepted.
type modelEnvelope struct {
	BaseScore *float64   `json:"base_score"`
	Trees     []treeNode `json:"trees"`
}

// TreeEnsemble scores a feature vector by summing leaf values over a set of
// regression trees plus a base score. It is immutable after construction and
// safe for concurrent use.
type TreeEnsemble struct {
	trees     []treeNode
	baseScore float64
}

// NewTreeEnsemble parses an xgboost JSON tree dump. Feature references in
// split nodes are resolved against featureIndex (vector position by name);
// the fN positional form is also understood. Unresolvable references score
// as 0 rather than failing.
func NewTreeEnsemble(raw []byte, featureIndex map[string]int) (*TreeEnsemble, error) {
	var env modelEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Trees) == 0 {
		// Plain dump_model output is a bare array of trees
		if err := json.Unmarshal(raw, &env.Trees); err != nil {
			return nil, fmt.Errorf("parsing model dump: %w", err)
		}
	}
	if len(env.Trees) == 0 {
		return nil, fmt.Errorf("model dump contains no trees")
	}

	base := float64(defaultBaseScore)
	if env.BaseScore != nil {
		base = *env.BaseScore
	}

	te := &TreeEnsemble{trees: env.Trees, baseScore: base}
	for i := range te.trees {
		resolveSplits(&te.trees[i], featureIndex)
	}
	return te, nil
}

// resolveSplits precomputes the vector index for every split node.
func resolveSplits(n *treeNode, featureIndex map[string]int) {
	n.splitIdx = -1
	if n.Leaf == nil {
		if idx, ok := featureIndex[n.Split]; ok {
			n.splitIdx = idx
		} else if strings.HasPrefix(n.Split, "f") {
			if idx, err := strconv.Atoi(n.Split[1:]); err == nil {
				n.splitIdx = idx
			}
		}
	}
	for i := range n.Children {
		resolveSplits(&n.Children[i], featureIndex)
	}
}

// Score sums the leaf values reached by vector across all trees, plus the
// base score.
func (te *TreeEnsemble) Score(vector []float64) float64 {
	sum := te.baseScore
	for i := range te.trees {
		sum += evalTree(&te.trees[i], vector)
	}
	return sum
}

// TreeCount returns the number of trees in the ensemble.
func (te *TreeEnsemble) TreeCount() int { return len(te.trees) }

func evalTree(n *treeNode, vector []float64) float64 {
	for {
		if n.Leaf != nil {
			return *n.Leaf
		}

		var v float64
		if n.splitIdx >= 0 && n.splitIdx < len(vector) {
			v = vector[n.splitIdx]
		}

		next := n.No
		if v < n.SplitCondition {
			next = n.Yes
		}

		child := findChild(n, next)
		if child == nil {
			// Malformed dump; treat the unreachable branch as contributing nothing
			return 0
		}
		n = child
	}
}

func findChild(n *treeNode, nodeID int) *treeNode {
	for i := range n.Children {
		if n.Children[i].NodeID == nodeID {
			return &n.Children[i]
		}
	}
	return nil
}
