package mls

import "sort"

// ScoreDistribution buckets scored listings by quality band
type ScoreDistribution struct {
	Excellent int `json:"excellent"` // 80+
	Good      int `json:"good"`      // 60-79
	Fair      int `json:"fair"`      // 40-59
	Poor      int `json:"poor"`      // <40
}

// Analysis summarizes a scored batch for internal review
type Analysis struct {
	TotalProperties   int               `json:"totalProperties"`
	AverageScore      float64           `json:"averageScore"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
	TopProperties     []ScoredListing   `json:"topProperties"`
}

// Analyze computes the score distribution and the top ten listings of a
// scored batch. An empty batch yields a zero analysis.
func Analyze(scored []ScoredListing) Analysis {
	analysis := Analysis{
		TotalProperties: len(scored),
		TopProperties:   []ScoredListing{},
	}
	if len(scored) == 0 {
		return analysis
	}

	sum := 0
	for _, s := range scored {
		sum += s.Score
		switch {
		case s.Score >= 80:
			analysis.ScoreDistribution.Excellent++
		case s.Score >= 60:
			analysis.ScoreDistribution.Good++
		case s.Score >= 40:
			analysis.ScoreDistribution.Fair++
		default:
			analysis.ScoreDistribution.Poor++
		}
	}
	analysis.AverageScore = float64(sum) / float64(len(scored))

	ranked := make([]ScoredListing, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	analysis.TopProperties = ranked

	return analysis
}
