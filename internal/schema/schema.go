package schema

import "strings"

// Canonical attribute keys understood by the filter evaluator. These follow
// OSM-style tag naming, so the casing of the canonical side is significant.
const (
	AttrHeight        = "height"
	AttrLevels        = "building:levels"
	AttrBuilding      = "building"
	AttrAmenity       = "amenity"
	AttrShop          = "shop"
	AttrOffice        = "office"
	AttrName          = "name"
	AttrStreet        = "addr:street"
	AttrHouseNumber   = "addr:housenumber"
	AttrStartDate     = "start_date"
	AttrZoning        = "zoning"
	AttrAssessedValue = "assessedValue"
)

// CanonicalAttributes lists every attribute the evaluator can resolve.
var CanonicalAttributes = []string{
	AttrHeight,
	AttrLevels,
	AttrBuilding,
	AttrAmenity,
	AttrShop,
	AttrOffice,
	AttrName,
	AttrStreet,
	AttrHouseNumber,
	AttrStartDate,
	AttrZoning,
	AttrAssessedValue,
}

// synonyms maps the attribute names language models tend to produce to their
// canonical keys. Matching is case-insensitive on the synonym side.
var synonyms = map[string]string{
	"floors":        AttrLevels,
	"levels":        AttrLevels,
	"stories":       AttrLevels,
	"floor":         AttrLevels,
	"level":         AttrLevels,
	"story":         AttrLevels,
	"type":          AttrBuilding,
	"building_type": AttrBuilding,
	"address":       AttrStreet,
	"street":        AttrStreet,
	"number":        AttrHouseNumber,
	"house_number":  AttrHouseNumber,
	"year":          AttrStartDate,
	"built":         AttrStartDate,
	"year_built":    AttrStartDate,
}

// Normalize rewrites a model-produced attribute name to its canonical key.
// Unknown attributes pass through unchanged so the evaluator can still try a
// direct field lookup on them.
func Normalize(attribute string) string {
	if canonical, ok := synonyms[strings.ToLower(strings.TrimSpace(attribute))]; ok {
		return canonical
	}
	return attribute
}

// IsCanonical reports whether the attribute is one of the known catalog keys.
func IsCanonical(attribute string) bool {
	for _, a := range CanonicalAttributes {
		if a == attribute {
			return true
		}
	}
	return false
}
