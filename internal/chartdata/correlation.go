// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package chartdata

import (
	"github.com/davetashner/surveydash/internal/survey"
)

// CorrelationCell returns m.Matrix[row][col]. The caller guarantees the
// indices are within the matrix.
func CorrelationCell(m survey.CorrelationMatrix, row, col int) float64 {
	return m.Matrix[row][col]
}

// TechCorrelation is one cell of the technology x performance heatmap.
type TechCorrelation struct {
	Tech        string  `json:"tech"`
	Variable    string  `json:"variable"`
	Correlation float64 `json:"correlation"`
}

// ToTechCorrelationCells flattens a nested correlation map into cells,
// sorted by technology then variable.
func ToTechCorrelationCells(m map[string]map[string]float64) []TechCorrelation {
	out := []TechCorrelation{}
	for _, tech := range sortedKeys(m) {
		inner := m[tech]
		for _, v := range sortedKeys(inner) {
			out = append(out, TechCorrelation{Tech: tech, Variable: v, Correlation: inner[v]})
		}
	}
	return out
}

// NestedToMatrix converts a row -> column -> value map into a rectangular
// matrix. Columns are the sorted union of every row's keys; absent cells
// are 0.
func NestedToMatrix(m map[string]map[string]float64) survey.CorrelationMatrix {
	rows := sortedKeys(m)
	seen := map[string]bool{}
	for _, r := range rows {
		for c := range m[r] {
			seen[c] = true
		}
	}
	cols := sortedKeys(seen)

	out := survey.CorrelationMatrix{
		RowVariables:    rows,
		ColumnVariables: cols,
		Matrix:          make([][]float64, len(rows)),
	}
	for i, r := range rows {
		out.Matrix[i] = make([]float64, len(cols))
		for j, c := range cols {
			out.Matrix[i][j] = m[r][c]
		}
	}
	return out
}

// FromVariableMatrix normalizes a square matrix. Rows or cells beyond the
// variable list are dropped and short rows are zero-filled.
func FromVariableMatrix(vm *survey.VariableMatrix) survey.CorrelationMatrix {
	if vm == nil {
		return survey.CorrelationMatrix{RowVariables: []string{}, ColumnVariables: []string{}, Matrix: [][]float64{}}
	}
	return rectangular(vm.Variables, vm.Variables, vm.Matrix)
}

// FromNamedCorrelation normalizes a rectangular matrix between two
// variable families. ok is false when the backend reported a message
// instead of a matrix.
func FromNamedCorrelation(nc *survey.NamedCorrelation) (survey.CorrelationMatrix, bool) {
	if nc == nil || nc.Message != "" || len(nc.Matrix) == 0 {
		return survey.CorrelationMatrix{RowVariables: []string{}, ColumnVariables: []string{}, Matrix: [][]float64{}}, false
	}
	return rectangular(nc.RowVariables(), nc.SurveyVariables, nc.Matrix), true
}

func rectangular(rows, cols []string, src [][]float64) survey.CorrelationMatrix {
	out := survey.CorrelationMatrix{
		RowVariables:    append([]string{}, rows...),
		ColumnVariables: append([]string{}, cols...),
		Matrix:          make([][]float64, len(rows)),
	}
	for i := range rows {
		out.Matrix[i] = make([]float64, len(cols))
		if i < len(src) {
			copy(out.Matrix[i], src[i])
		}
	}
	return out
}

// Strength buckets a correlation coefficient for heatmap shading.
type Strength int

const (
	StrengthNone Strength = iota
	WeakPositive
	WeakNegative
	ModeratePositive
	ModerateNegative
	StrongPositive
	StrongNegative
)

var strengthNames = map[Strength]string{
	StrengthNone:     "none",
	WeakPositive:     "weak positive",
	WeakNegative:     "weak negative",
	ModeratePositive: "moderate positive",
	ModerateNegative: "moderate negative",
	StrongPositive:   "strong positive",
	StrongNegative:   "strong negative",
}

func (s Strength) String() string { return strengthNames[s] }

// Positive reports whether s is one of the positive buckets.
func (s Strength) Positive() bool {
	return s == WeakPositive || s == ModeratePositive || s == StrongPositive
}

// CorrelationStrength buckets v at the 0.5, 0.3 and 0.1 thresholds.
func CorrelationStrength(v float64) Strength {
	switch {
	case v >= 0.5:
		return StrongPositive
	case v <= -0.5:
		return StrongNegative
	case v >= 0.3:
		return ModeratePositive
	case v <= -0.3:
		return ModerateNegative
	case v >= 0.1:
		return WeakPositive
	case v <= -0.1:
		return WeakNegative
	default:
		return StrengthNone
	}
}
