package mls

import (
	"fmt"
	"math"
	"strings"
)

// Home base for proximity: Bellingham, WA
const (
	homeBaseLat = 48.7519
	homeBaseLng = -122.4787

	// milesPerDegree approximates one degree of latitude
	milesPerDegree = 69.0

	// defaultProximity is assumed for listings without coordinates
	defaultProximity = 5.0
)

// RawListing mirrors the RESO fields of the MLS Grid Property payload
// that the dashboard cares about.
type RawListing struct {
	ListingKey            string   `json:"ListingKey"`
	UnparsedAddress       string   `json:"UnparsedAddress"`
	StreetNumber          string   `json:"StreetNumber"`
	StreetName            string   `json:"StreetName"`
	City                  string   `json:"City"`
	StateOrProvince       string   `json:"StateOrProvince"`
	PropertyType          string   `json:"PropertyType"`
	PropertySubType       string   `json:"PropertySubType"`
	ListPrice             float64  `json:"ListPrice"`
	BedroomsTotal         int      `json:"BedroomsTotal"`
	BathroomsTotalInteger float64  `json:"BathroomsTotalInteger"`
	LotSizeAcres          float64  `json:"LotSizeAcres"`
	LivingArea            float64  `json:"LivingArea"`
	StandardStatus        string   `json:"StandardStatus"`
	Utilities             []string `json:"Utilities"`
	Latitude              float64  `json:"Latitude"`
	Longitude             float64  `json:"Longitude"`
	ListingContractDate   string   `json:"ListingContractDate"`
}

// Transform adapts raw MLS Grid listings into scoring inputs. Only
// residential listings with at least one bedroom and a building are
// kept. Proximity is a flat-earth distance in miles from home base;
// listings without coordinates get the default.
func Transform(raw []RawListing) []Listing {
	listings := make([]Listing, 0, len(raw))

	for _, r := range raw {
		if r.PropertyType != "Residential" || r.BedroomsTotal <= 0 || r.LivingArea <= 0 {
			continue
		}

		proximity := defaultProximity
		if r.Latitude != 0 && r.Longitude != 0 {
			proximity = math.Sqrt(
				math.Pow(r.Latitude-homeBaseLat, 2)+math.Pow(r.Longitude-homeBaseLng, 2),
			) * milesPerDegree
		}

		listings = append(listings, Listing{
			MLSID:            r.ListingKey,
			Address:          rawAddress(r),
			LotSize:          r.LotSizeAcres,
			Bedrooms:         r.BedroomsTotal,
			Bathrooms:        r.BathroomsTotalInteger,
			Price:            r.ListPrice,
			UtilitiesStubbed: utilitiesStubbed(r.Utilities),
			Zoning:           "Residential",
			Proximity:        &proximity,
			SquareFootage:    r.LivingArea,
			PropertyType:     r.PropertyType,
			Status:           r.StandardStatus,
			ListingDate:      r.ListingContractDate,
			Latitude:         r.Latitude,
			Longitude:        r.Longitude,
		})
	}

	return listings
}

// utilitiesStubbed reports whether the utility list suggests power and
// water are already brought to the lot
func utilitiesStubbed(utilities []string) bool {
	for _, u := range utilities {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "electric") || strings.Contains(lower, "water") || strings.Contains(lower, "septic") {
			return true
		}
	}
	return false
}

func rawAddress(r RawListing) string {
	if r.UnparsedAddress != "" {
		return r.UnparsedAddress
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s, %s, %s", r.StreetNumber, r.StreetName, r.City, r.StateOrProvince))
}
