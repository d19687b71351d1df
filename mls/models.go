package mls

// Listing is the scoring input shape. Callers adapt whatever the
// external feed returns into this before scoring; see Transform for the
// MLS Grid adaptation. Proximity is optional because not every feed
// carries coordinates; a listing without one scores neutral on that
// criterion.
type Listing struct {
	MLSID            string   `json:"mlsId,omitempty"`
	Address          string   `json:"address,omitempty"`
	LotSize          float64  `json:"lotSize"`
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        float64  `json:"bathrooms"`
	Price            float64  `json:"price"`
	UtilitiesStubbed bool     `json:"utilitiesStubbed"`
	Zoning           string   `json:"zoning,omitempty"`
	Proximity        *float64 `json:"proximity,omitempty"`

	SquareFootage float64 `json:"squareFootage,omitempty"`
	PropertyType  string  `json:"propertyType,omitempty"`
	Status        string  `json:"status,omitempty"`
	ListingDate   string  `json:"listingDate,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
}

// CriterionScore is one line of the score breakdown: the normalized
// 0-1 value and the weight it carries in the composite.
type CriterionScore struct {
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Breakdown itemizes every criterion feeding the composite score
type Breakdown struct {
	Lot       CriterionScore `json:"lotScore"`
	Bedrooms  CriterionScore `json:"bedScore"`
	Bathrooms CriterionScore `json:"bathScore"`
	Price     CriterionScore `json:"priceScore"`
	Utilities CriterionScore `json:"utilitiesBonus"`
	Zoning    CriterionScore `json:"zoningScore"`
	Proximity CriterionScore `json:"proximityScore"`
}

// ScoredListing is a listing annotated with its composite score and the
// itemized breakdown behind it.
type ScoredListing struct {
	Listing
	Score          int       `json:"score"`
	ScoreBreakdown Breakdown `json:"scoreBreakdown"`
}
