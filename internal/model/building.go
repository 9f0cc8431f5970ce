package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cityviewer/internal/schema"
)

// Building is the normalized view of one raw catalog entry. It is built once
// per request from untyped source data and never mutated afterwards.
type Building struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BuildingType string  `json:"type"`
	Levels       string  `json:"levels"`
	Height       float64 `json:"height"`
	Amenity      string  `json:"amenity"`
	Shop         string  `json:"shop"`
	Office       string  `json:"office"`
	YearBuilt    string  `json:"year_built"`
	Material     string  `json:"material"`
	RoofShape    string  `json:"roof_shape"`
	Street       string  `json:"address"`
	HouseNumber  string  `json:"housenumber"`
}

// NewBuilding constructs a Building from a raw attribute map, applying the
// catalog defaults for anything missing. Keys follow OSM tag naming.
func NewBuilding(data map[string]any) *Building {
	b := &Building{
		ID:           stringAttr(data, "id", "unknown"),
		Name:         stringAttr(data, "name", "Unnamed Building"),
		BuildingType: stringAttr(data, "building", "commercial"),
		Levels:       stringAttr(data, "building:levels", "3"),
		Amenity:      stringAttr(data, "amenity", ""),
		Shop:         stringAttr(data, "shop", ""),
		Office:       stringAttr(data, "office", ""),
		YearBuilt:    stringAttr(data, "start_date", "unknown"),
		Material:     stringAttr(data, "material", "concrete"),
		RoofShape:    stringAttr(data, "roof:shape", "flat"),
		Street:       stringAttr(data, "addr:street", ""),
		HouseNumber:  stringAttr(data, "addr:housenumber", ""),
	}
	b.Height = deriveHeight(data["height"], b.Levels)
	return b
}

// deriveHeight resolves the building height in meters: an explicit height tag
// wins, otherwise three meters per level, otherwise 10.
func deriveHeight(raw any, levels string) float64 {
	if h, ok := toFloat(raw); ok {
		return h
	}
	if l, ok := toFloat(levels); ok {
		return l * 3
	}
	return 10
}

// ToMap converts the building to the wire representation the viewer expects.
func (b *Building) ToMap() map[string]any {
	return map[string]any{
		"id":          b.ID,
		"name":        b.Name,
		"type":        b.BuildingType,
		"levels":      b.Levels,
		"height":      b.Height,
		"amenity":     b.Amenity,
		"shop":        b.Shop,
		"office":      b.Office,
		"year_built":  b.YearBuilt,
		"material":    b.Material,
		"roof_shape":  b.RoofShape,
		"address":     b.Street,
		"housenumber": b.HouseNumber,
	}
}

// AttributeValue resolves a canonical attribute to the record's value for it.
// The boolean is false when the record has no such field, which evaluates as
// a non-match rather than an error.
func (b *Building) AttributeValue(attribute string) (any, bool) {
	switch attribute {
	case schema.AttrBuilding:
		return b.BuildingType, true
	case schema.AttrLevels:
		return b.Levels, true
	case schema.AttrHeight:
		return b.Height, true
	case schema.AttrStartDate:
		return b.YearBuilt, true
	case schema.AttrName:
		return b.Name, true
	case schema.AttrAmenity:
		return b.Amenity, true
	case schema.AttrShop:
		return b.Shop, true
	case schema.AttrOffice:
		return b.Office, true
	case schema.AttrStreet:
		return b.Street, true
	case schema.AttrHouseNumber:
		return b.HouseNumber, true
	case "material":
		return b.Material, true
	case "roof_shape", "roof:shape":
		return b.RoofShape, true
	default:
		return nil, false
	}
}

// Matches evaluates a single predicate against the building. Predicates that
// cannot be evaluated (unknown attribute, non-numeric operand for a numeric
// operator, unknown operator) are non-matches, never errors.
func (b *Building) Matches(p FilterPredicate) bool {
	value, ok := b.AttributeValue(p.Attribute)
	if !ok || value == nil {
		return false
	}

	switch p.Operator {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		left, lok := toFloat(value)
		right, rok := toFloat(p.Value)
		if !lok || !rok {
			return false
		}
		switch p.Operator {
		case OpGreater:
			return left > right
		case OpLess:
			return left < right
		case OpGreaterEqual:
			return left >= right
		default:
			return left <= right
		}
	case OpEqual, "==":
		return strings.EqualFold(stringify(value), stringify(p.Value))
	case OpContains:
		return strings.Contains(strings.ToLower(stringify(value)), strings.ToLower(stringify(p.Value)))
	default:
		return false
	}
}

// MatchesAll reports whether the building satisfies every predicate in the
// list. An empty list matches every building.
func (b *Building) MatchesAll(filters []FilterPredicate) bool {
	for _, p := range filters {
		if !b.Matches(p) {
			return false
		}
	}
	return true
}

func stringAttr(data map[string]any, key, fallback string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return fallback
	}
	s := stringify(v)
	if s == "" {
		return fallback
	}
	return s
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// NumericValue coerces an attribute value to float64 when possible, for
// sorting and numeric comparison.
func NumericValue(v any) (float64, bool) {
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
