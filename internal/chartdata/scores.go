// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package chartdata

import (
	"strconv"

	"github.com/davetashner/surveydash/internal/survey"
)

// ScoreCard is one composite score as shown on a metric card.
type ScoreCard struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Mean        string `json:"mean"`
	Std         string `json:"std"`
}

var scoreCards = []ScoreCard{
	{Key: "EO_Score", Title: "EO Score", Description: "Entrepreneurial Orientation composite score"},
	{Key: "Capabilities_Score", Title: "Capabilities Score", Description: "Organizational capabilities composite score"},
	{Key: "Collaboration_Score", Title: "Collaboration Score", Description: "Collaboration effectiveness composite score"},
	{Key: "IT_Score", Title: "IT Score", Description: "Information Technology adoption composite score"},
}

// ToScoreCards returns the four composite score cards in fixed order.
// Missing scores read "N/A".
func ToScoreCards(c *survey.CompositeScoresData) []ScoreCard {
	out := make([]ScoreCard, 0, len(scoreCards))
	for _, card := range scoreCards {
		var s *survey.ScoreSummary
		if c != nil {
			s = c.Scores[card.Key]
		}
		if s == nil {
			s = &survey.ScoreSummary{}
		}
		card.Mean = FormatScore(s.Mean)
		card.Std = FormatScore(s.Std)
		out = append(out, card)
	}
	return out
}

// FormatScore renders a score with two decimals.
func FormatScore(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
