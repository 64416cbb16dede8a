package cli

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/quantify"
)

// ScenarioDoc is the YAML document for evaluation inputs:
//
//	probabilities:
//	  A: 0.01
//	  B: 0.02
//	scenarios:
//	  - {A: 1, B: 0, C: 1, D: 0}
//	  - {A: 0, B: 1, C: 1, D: 1}
//
// probabilities feeds probability evaluation; scenarios feeds binary
// evaluation. Either section may be omitted.
type ScenarioDoc struct {
	Probabilities ftree.ProbabilityVector `yaml:"probabilities,omitempty"`
	Scenarios     []map[string]float64    `yaml:"scenarios,omitempty"`
}

// LoadScenarios reads a scenario document from a YAML file.
func LoadScenarios(path string) (*ScenarioDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading scenario file: %v", err)}
	}
	var doc ScenarioDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeBadDocument, Message: fmt.Sprintf("parsing scenario file: %v", err)}
	}
	return &doc, nil
}

// ScenarioTable converts the document's scenario rows to the
// column-oriented form quantify consumes. Columns are the sorted union
// of all row keys; a key absent from a row defaults to 0.
func (d *ScenarioDoc) ScenarioTable() quantify.Scenarios {
	colSet := make(map[string]bool)
	for _, row := range d.Scenarios {
		for k := range row {
			colSet[k] = true
		}
	}
	columns := make([]string, 0, len(colSet))
	for k := range colSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	rows := make([][]float64, len(d.Scenarios))
	for i, row := range d.Scenarios {
		vals := make([]float64, len(columns))
		for j, col := range columns {
			vals[j] = row[col]
		}
		rows[i] = vals
	}
	return quantify.Scenarios{Columns: columns, Rows: rows}
}
