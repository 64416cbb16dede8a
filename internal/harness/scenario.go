package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/faultline/faultline/internal/ftree"
)

// Scenario defines one conformance scenario: an inline fault tree plus
// the expected analysis outputs.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Tree is the fault tree under test.
	Tree TreeDef `yaml:"tree"`

	// Expect holds the expected pipeline outputs.
	Expect Expectation `yaml:"expect"`

	// Assignments are binary evaluations checked against the compiled
	// evaluator.
	Assignments []AssignmentCheck `yaml:"assignments,omitempty"`

	// Probabilities are probability evaluations checked against the
	// truth-table marginalization.
	Probabilities []ProbabilityCheck `yaml:"probabilities,omitempty"`
}

// TreeDef is the inline node/edge declaration of a fault tree.
type TreeDef struct {
	Nodes []NodeDef `yaml:"nodes"`
	Edges []EdgeDef `yaml:"edges"`
}

// NodeDef mirrors ftree.Node in YAML form.
type NodeDef struct {
	ID    int64  `yaml:"id"`
	Event string `yaml:"event"`
	Kind  string `yaml:"kind"`
}

// EdgeDef mirrors ftree.Edge in YAML form.
type EdgeDef struct {
	From int64 `yaml:"from"`
	To   int64 `yaml:"to"`
}

// Expectation holds the expected pipeline outputs.
type Expectation struct {
	// Equation is the expected flat failure equation.
	Equation string `yaml:"equation,omitempty"`
	// MinCutSets are the expected minimal cut sets as `*`-joined
	// product terms, in canonical order.
	MinCutSets []string `yaml:"mincuts"`
	// Failures is the expected failing-row count of the truth table.
	Failures int `yaml:"failures"`
}

// AssignmentCheck is one binary evaluation expectation.
type AssignmentCheck struct {
	Assign map[string]int `yaml:"assign"`
	Fail   bool           `yaml:"fail"`
}

// ProbabilityCheck is one probability evaluation expectation.
type ProbabilityCheck struct {
	Probs     ftree.ProbabilityVector `yaml:"probs"`
	Value     float64                 `yaml:"value"`
	Tolerance float64                 `yaml:"tolerance,omitempty"`
}

// LoadScenario reads and decodes one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	return &s, nil
}

// BuildTree converts the YAML tree declaration to the model type.
func (s *Scenario) BuildTree() *ftree.Tree {
	t := &ftree.Tree{}
	for _, n := range s.Tree.Nodes {
		t.Nodes = append(t.Nodes, ftree.Node{ID: n.ID, Event: n.Event, Kind: ftree.Kind(n.Kind)})
	}
	for _, e := range s.Tree.Edges {
		t.Edges = append(t.Edges, ftree.Edge{From: e.From, To: e.To})
	}
	return t
}
