// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package chartdata

import (
	"sort"

	"github.com/davetashner/surveydash/internal/survey"
)

// GenderRow compares male and female means of one variable.
type GenderRow struct {
	Variable    string   `json:"variable"`
	Male        float64  `json:"male"`
	Female      float64  `json:"female"`
	Significant bool     `json:"significant"`
	PValue      *float64 `json:"pValue"`
}

// ToGenderSeries lists the gender comparisons sorted by variable.
func ToGenderSeries(c *survey.ComparativeData) []GenderRow {
	if c == nil {
		return []GenderRow{}
	}
	out := make([]GenderRow, 0, len(c.Gender))
	for _, v := range sortedKeys(c.Gender) {
		g := c.Gender[v]
		if g == nil {
			continue
		}
		out = append(out, GenderRow{
			Variable:    v,
			Male:        g.MaleMean,
			Female:      g.FemaleMean,
			Significant: g.Significant,
			PValue:      g.PValue,
		})
	}
	return out
}

// GroupKind selects a comparative breakdown.
type GroupKind string

const (
	ByAgeGroup      GroupKind = "age"
	ByBusinessField GroupKind = "business"
)

// GroupRow is one group's summary of a variable.
type GroupRow struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Count int     `json:"count"`
}

// ToGroupSeries returns the per-group statistics of variable for the given
// breakdown, in backend order.
func ToGroupSeries(c *survey.ComparativeData, kind GroupKind, variable string) []GroupRow {
	if c == nil {
		return []GroupRow{}
	}
	var src []survey.GroupStat
	switch kind {
	case ByAgeGroup:
		src = c.AgeGroups[variable]
	case ByBusinessField:
		src = c.BusinessFields[variable]
	}
	out := make([]GroupRow, 0, len(src))
	for _, g := range src {
		out = append(out, GroupRow{Group: g.Group(), Mean: g.Mean, Std: g.Std, Count: g.Count})
	}
	return out
}

// StatsRow is one variable of a descriptive statistics table.
type StatsRow struct {
	Variable string  `json:"variable"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
}

// ToStatsRows lists per-variable statistics sorted by variable.
func ToStatsRows(m map[string]survey.VariableStats) []StatsRow {
	out := make([]StatsRow, 0, len(m))
	for _, v := range sortedKeys(m) {
		s := m[v]
		out = append(out, StatsRow{Variable: v, Mean: s.Mean, Median: s.Median, Std: s.Std})
	}
	return out
}

// TechGenderRow is the male and female adoption of one technology.
type TechGenderRow struct {
	Technology string  `json:"technology"`
	Male       float64 `json:"male"`
	Female     float64 `json:"female"`
}

// ToTechByGender lists technology adoption by gender sorted by technology.
func ToTechByGender(t *survey.TechnologyAnalysisData) []TechGenderRow {
	if t == nil || t.TechnologyByDemographics == nil {
		return []TechGenderRow{}
	}
	g := t.TechnologyByDemographics.Gender
	out := make([]TechGenderRow, 0, len(g))
	for _, tech := range sortedKeys(g) {
		out = append(out, TechGenderRow{
			Technology: tech,
			Male:       g[tech]["male"],
			Female:     g[tech]["female"],
		})
	}
	return out
}

// Partnership distribution and impact keys used by the backend.
const (
	DoublePartnership = "double_partnership_dp"
	TriplePartnership = "triple_partnership_tp"
)

// ImpactRow is the mean score of a variable for one partnership type.
type ImpactRow struct {
	Partnership string  `json:"partnership"`
	Score       float64 `json:"score"`
	Count       int     `json:"count"`
}

// ToPartnershipImpact returns the impact of partnership type ptype on
// variable, in backend order.
func ToPartnershipImpact(p *survey.PartnershipAnalysisData, ptype, variable string) []ImpactRow {
	if p == nil {
		return []ImpactRow{}
	}
	src := p.PartnershipImpact[ptype][variable]
	out := make([]ImpactRow, 0, len(src))
	for _, s := range src {
		out = append(out, ImpactRow{Partnership: s.PartnershipType, Score: s.MeanScore, Count: s.Count})
	}
	return out
}

// PartnershipPoints returns the chart points of one partnership
// distribution.
func PartnershipPoints(p *survey.PartnershipAnalysisData, key string) []ChartPoint {
	if p == nil {
		return []ChartPoint{}
	}
	return ToChartPoints(p.PartnershipDistribution[key])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
