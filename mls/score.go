package mls

import "math"

// Criterion weights; they sum to 1.0
const (
	weightLot       = 0.22
	weightBedrooms  = 0.16
	weightBathrooms = 0.13
	weightPrice     = 0.15
	weightUtilities = 0.12
	weightZoning    = 0.12
	weightProximity = 0.10
)

// neutralScore is used for criteria a listing carries no data for
const neutralScore = 0.5

// zoningWeights maps zoning designations to their criterion value;
// unknown designations score neutral.
var zoningWeights = map[string]float64{
	"Residential":  1,
	"Commercial":   0.7,
	"Mixed":        0.85,
	"Agricultural": 0.9,
	"Other":        0.5,
}

// Score ranks a batch of listings with a weighted composite of seven
// criteria. Numeric criteria are min-max normalized across the batch
// (a uniform batch scores 0 for that criterion rather than erroring);
// price and proximity are inverted because lower is better. The
// composite is clamped to 1 and scaled to an integer 0-100, rounding
// half up. Scoring is deterministic: same batch in, same scores out.
func Score(listings []Listing) []ScoredListing {
	if len(listings) == 0 {
		return []ScoredListing{}
	}

	var lotR, bedR, bathR, priceR, proxR criterionRange
	for _, l := range listings {
		lotR.observe(l.LotSize)
		bedR.observe(float64(l.Bedrooms))
		bathR.observe(l.Bathrooms)
		priceR.observe(l.Price)
		if l.Proximity != nil {
			proxR.observe(*l.Proximity)
		}
	}

	scored := make([]ScoredListing, 0, len(listings))
	for _, l := range listings {
		lotScore := lotR.norm(l.LotSize)
		bedScore := bedR.norm(float64(l.Bedrooms))
		bathScore := bathR.norm(l.Bathrooms)
		priceScore := 1 - priceR.norm(l.Price)

		utilitiesBonus := 0.0
		if l.UtilitiesStubbed {
			utilitiesBonus = 1.0
		}

		zoningScore := neutralScore
		if l.Zoning != "" {
			if w, ok := zoningWeights[l.Zoning]; ok {
				zoningScore = w
			}
		}

		proximityScore := neutralScore
		if l.Proximity != nil {
			proximityScore = 1 - proxR.norm(*l.Proximity)
		}

		raw := lotScore*weightLot +
			bedScore*weightBedrooms +
			bathScore*weightBathrooms +
			priceScore*weightPrice +
			utilitiesBonus*weightUtilities +
			zoningScore*weightZoning +
			proximityScore*weightProximity

		scored = append(scored, ScoredListing{
			Listing: l,
			Score:   int(math.Round(math.Min(raw, 1) * 100)),
			ScoreBreakdown: Breakdown{
				Lot:       CriterionScore{Value: lotScore, Weight: weightLot},
				Bedrooms:  CriterionScore{Value: bedScore, Weight: weightBedrooms},
				Bathrooms: CriterionScore{Value: bathScore, Weight: weightBathrooms},
				Price:     CriterionScore{Value: priceScore, Weight: weightPrice},
				Utilities: CriterionScore{Value: utilitiesBonus, Weight: weightUtilities},
				Zoning:    CriterionScore{Value: zoningScore, Weight: weightZoning},
				Proximity: CriterionScore{Value: proximityScore, Weight: weightProximity},
			},
		})
	}

	return scored
}

// criterionRange tracks a criterion's batch-wide min and max
type criterionRange struct {
	min, max float64
	seen     bool
}

func (r *criterionRange) observe(v float64) {
	if !r.seen {
		r.min, r.max = v, v
		r.seen = true
		return
	}
	if v < r.min {
		r.min = v
	}
	if v > r.max {
		r.max = v
	}
}

// norm maps v into [0,1] across the observed range; a degenerate range
// (all values equal, or nothing observed) yields 0
func (r *criterionRange) norm(v float64) float64 {
	if !r.seen || r.max <= r.min {
		return 0
	}
	return (v - r.min) / (r.max - r.min)
}
