// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package survey

// Payload structs mirror the backend JSON. Nested objects are pointers and
// collections are maps or slices so that an absent field decodes to nil and
// can be told apart from a present zero value.

// HealthResponse is returned by the health resource.
type HealthResponse struct {
	Status       string `json:"status"`
	TotalRecords int    `json:"total_records"`
}

// Distribution is a categorical frequency breakdown. Labels, Values and
// Percentages are index-aligned.
type Distribution struct {
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Percentages []float64 `json:"percentages"`
}

// CrossTabulation is a contingency table of counts.
type CrossTabulation struct {
	Index   []string    `json:"index"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// DemographicsData is returned by the demographics resource.
type DemographicsData struct {
	Distributions    map[string]*Distribution    `json:"distributions,omitempty"`
	CrossTabulations map[string]*CrossTabulation `json:"cross_tabulations,omitempty"`
}

// VariableStats holds descriptive statistics for one survey variable.
type VariableStats struct {
	Mean         float64            `json:"mean"`
	Median       float64            `json:"median"`
	Std          float64            `json:"std"`
	Min          *float64           `json:"min,omitempty"`
	Max          *float64           `json:"max,omitempty"`
	Distribution map[string]float64 `json:"distribution,omitempty"`
}

// VariableMatrix is a square correlation matrix over a single variable list.
type VariableMatrix struct {
	Variables []string    `json:"variables"`
	Matrix    [][]float64 `json:"matrix"`
}

// VariablePair is one entry of a ranked correlation list.
type VariablePair struct {
	Var1        string  `json:"var1"`
	Var2        string  `json:"var2"`
	Correlation float64 `json:"correlation"`
}

// SurveyAnalysisData is returned by the survey-analysis resource.
type SurveyAnalysisData struct {
	BasicStatistics   map[string]VariableStats `json:"basic_statistics,omitempty"`
	CorrelationMatrix *VariableMatrix          `json:"correlation_matrix,omitempty"`
	TopCorrelations   []VariablePair           `json:"top_correlations,omitempty"`
}

// GenderComparison is a two-sample t-test of one variable by gender.
type GenderComparison struct {
	MaleMean    float64  `json:"male_mean"`
	FemaleMean  float64  `json:"female_mean"`
	MaleStd     float64  `json:"male_std"`
	FemaleStd   float64  `json:"female_std"`
	TStatistic  float64  `json:"t_statistic"`
	PValue      *float64 `json:"p_value"`
	Significant bool     `json:"significant"`
}

// GroupStat summarizes one variable within one group. Exactly one of
// AgeGroup or BusinessField is set depending on the breakdown.
type GroupStat struct {
	AgeGroup      string  `json:"age_group,omitempty"`
	BusinessField string  `json:"business_field,omitempty"`
	Mean          float64 `json:"mean"`
	Std           float64 `json:"std"`
	Count         int     `json:"count"`
}

// Group returns whichever group label is set.
func (g GroupStat) Group() string {
	if g.AgeGroup != "" {
		return g.AgeGroup
	}
	return g.BusinessField
}

// ComparativeData is returned by the comparative-analysis resource.
type ComparativeData struct {
	Gender         map[string]*GenderComparison `json:"gender,omitempty"`
	AgeGroups      map[string][]GroupStat       `json:"age_groups,omitempty"`
	BusinessFields map[string][]GroupStat       `json:"business_fields,omitempty"`
}

// ClusterProfile is a named group's per-variable means plus member count.
type ClusterProfile struct {
	ClusterID int                `json:"cluster_id"`
	Size      int                `json:"size"`
	Profile   map[string]float64 `json:"profile,omitempty"`
}

// AnovaResult is a one-way ANOVA of one variable across clusters. A
// non-empty Message means the backend could not compute the test.
type AnovaResult struct {
	Variable    string   `json:"variable"`
	FStatistic  *float64 `json:"f_statistic"`
	PValue      *float64 `json:"p_value"`
	Significant bool     `json:"significant"`
	Message     string   `json:"message,omitempty"`
}

// ClusterResult is the clustering outcome for one value of k.
type ClusterResult struct {
	Clusters     []ClusterProfile `json:"clusters,omitempty"`
	Inertia      float64          `json:"inertia"`
	AnovaResults []AnovaResult    `json:"anova_results,omitempty"`
}

// PCAProjection holds 2-D coordinates per observation.
type PCAProjection struct {
	PCAComponents          [][]float64 `json:"pca_components,omitempty"`
	ClusterLabels          []int       `json:"cluster_labels,omitempty"`
	ExplainedVarianceRatio []float64   `json:"explained_variance_ratio,omitempty"`
}

// ClusteringData is returned by the clustering resource. Results are keyed
// by "k_<n>".
type ClusteringData struct {
	ClusteringResults map[string]*ClusterResult `json:"clustering_results,omitempty"`
	Visualization     *PCAProjection            `json:"visualization,omitempty"`
}

// Result returns the clustering result for k clusters, or nil.
func (c *ClusteringData) Result(k string) *ClusterResult {
	if c == nil || c.ClusteringResults == nil {
		return nil
	}
	return c.ClusteringResults[k]
}

// TechnologyByDemographics breaks technology adoption down by group.
type TechnologyByDemographics struct {
	Gender         map[string]map[string]float64 `json:"gender,omitempty"`
	BusinessFields map[string]map[string]float64 `json:"business_fields,omitempty"`
}

// TechnologyAnalysisData is returned by the technology-analysis resource.
type TechnologyAnalysisData struct {
	TechnologyStatistics             map[string]VariableStats      `json:"technology_statistics,omitempty"`
	TechnologyByDemographics         *TechnologyByDemographics     `json:"technology_by_demographics,omitempty"`
	TechnologyPerformanceCorrelation map[string]map[string]float64 `json:"technology_performance_correlation,omitempty"`
}

// PartnershipScore is the mean score of a variable for one partnership type.
type PartnershipScore struct {
	PartnershipType string  `json:"partnership_type"`
	MeanScore       float64 `json:"mean_score"`
	Count           int     `json:"count"`
}

// PartnershipAnalysisData is returned by the partnership-analysis resource.
type PartnershipAnalysisData struct {
	PartnershipDistribution map[string]*Distribution                 `json:"partnership_distribution,omitempty"`
	PartnershipImpact       map[string]map[string][]PartnershipScore `json:"partnership_impact,omitempty"`
}

// SampleInfo describes the survey sample.
type SampleInfo struct {
	TotalRespondents    int `json:"total_respondents"`
	CompleteResponses   int `json:"complete_responses"`
	SurveyVariables     int `json:"survey_variables"`
	TechnologyVariables int `json:"technology_variables"`
}

// KeyFinding is one categorized headline finding.
type KeyFinding struct {
	Category string `json:"category"`
	Finding  string `json:"finding"`
}

// ComprehensiveReportData is returned by the comprehensive-report resource.
type ComprehensiveReportData struct {
	SampleInfo  *SampleInfo  `json:"sample_info,omitempty"`
	KeyFindings []KeyFinding `json:"key_findings,omitempty"`
}

// NamedCorrelation is a rectangular correlation matrix between two variable
// families. When Message is set the backend had too little data.
type NamedCorrelation struct {
	ITVariables          []string    `json:"it_variables,omitempty"`
	PartnershipVariables []string    `json:"partnership_variables,omitempty"`
	SurveyVariables      []string    `json:"survey_variables,omitempty"`
	Matrix               [][]float64 `json:"matrix,omitempty"`
	Message              string      `json:"message,omitempty"`
}

// RowVariables returns whichever row family is populated.
func (n *NamedCorrelation) RowVariables() []string {
	if n == nil {
		return nil
	}
	if len(n.ITVariables) > 0 {
		return n.ITVariables
	}
	return n.PartnershipVariables
}

// CorrelationalAnalysisData is returned by the correlational-analysis resource.
type CorrelationalAnalysisData struct {
	ITSurveyCorrelation          *NamedCorrelation `json:"it_survey_correlation,omitempty"`
	PartnershipSurveyCorrelation *NamedCorrelation `json:"partnership_survey_correlation,omitempty"`
}

// ScoreSummary is the mean and standard deviation of a composite score.
type ScoreSummary struct {
	Mean *float64 `json:"mean,omitempty"`
	Std  *float64 `json:"std,omitempty"`
}

// CompositeScoresData is returned by the composite-scores resource.
type CompositeScoresData struct {
	Scores       map[string]*ScoreSummary `json:"scores,omitempty"`
	Correlations *VariableMatrix          `json:"correlations,omitempty"`
	Analysis     string                   `json:"gpt_analysis,omitempty"`
}

// CorrelationMatrix is the normalized rectangular matrix every heatmap
// consumes: len(Matrix) == len(RowVariables) and each row has
// len(ColumnVariables) cells in [-1, 1].
type CorrelationMatrix struct {
	RowVariables    []string    `json:"row_variables"`
	ColumnVariables []string    `json:"column_variables"`
	Matrix          [][]float64 `json:"matrix"`
}
