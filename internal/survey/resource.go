// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package survey defines the logical backend resources and the JSON payload
// shapes the analytics backend returns for each of them.
package survey

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownResource is returned when a name does not match any resource.
var ErrUnknownResource = errors.New("unknown resource")

// Resource is a logical backend resource name such as "demographics".
type Resource string

// Resources served by the analytics backend.
const (
	Health                Resource = "health"
	Demographics          Resource = "demographics"
	SurveyAnalysis        Resource = "survey-analysis"
	ComparativeAnalysis   Resource = "comparative-analysis"
	Clustering            Resource = "clustering"
	TechnologyAnalysis    Resource = "technology-analysis"
	PartnershipAnalysis   Resource = "partnership-analysis"
	ComprehensiveReport   Resource = "comprehensive-report"
	CorrelationalAnalysis Resource = "correlational-analysis"
	CompositeScores       Resource = "composite-scores"
)

// all lists every known resource in display order.
var all = []Resource{
	Health,
	Demographics,
	SurveyAnalysis,
	ComparativeAnalysis,
	Clustering,
	TechnologyAnalysis,
	PartnershipAnalysis,
	ComprehensiveReport,
	CorrelationalAnalysis,
	CompositeScores,
}

// All returns every known resource in display order.
func All() []Resource {
	out := make([]Resource, len(all))
	copy(out, all)
	return out
}

// Path returns the URL path of the resource relative to the API base URL.
func (r Resource) Path() string {
	return "/" + string(r)
}

// String implements fmt.Stringer.
func (r Resource) String() string {
	return string(r)
}

// Known reports whether r is one of the resources the backend serves.
func (r Resource) Known() bool {
	for _, k := range all {
		if k == r {
			return true
		}
	}
	return false
}

// Parse resolves a user-supplied name to a Resource. A leading slash is
// accepted so that endpoint paths and logical names are interchangeable.
func Parse(name string) (Resource, error) {
	r := Resource(strings.TrimPrefix(strings.TrimSpace(name), "/"))
	if !r.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}
	return r, nil
}
