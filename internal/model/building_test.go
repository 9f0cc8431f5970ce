package model

import "testing"

func sampleBuilding() *Building {
	return NewBuilding(map[string]any{
		"id":               "way/123",
		"name":             "Historic Grain Exchange",
		"building":         "commercial",
		"building:levels":  "6",
		"height":           24.5,
		"amenity":          "restaurant",
		"start_date":       "1909",
		"addr:street":      "Stephen Avenue",
		"addr:housenumber": "815",
	})
}

func TestNewBuildingDefaults(t *testing.T) {
	b := NewBuilding(map[string]any{})

	if b.ID != "unknown" {
		t.Errorf("ID = %q, want unknown", b.ID)
	}
	if b.Name != "Unnamed Building" {
		t.Errorf("Name = %q, want Unnamed Building", b.Name)
	}
	if b.BuildingType != "commercial" {
		t.Errorf("BuildingType = %q, want commercial", b.BuildingType)
	}
	if b.Levels != "3" {
		t.Errorf("Levels = %q, want 3", b.Levels)
	}
	// Height derives from the default three levels.
	if b.Height != 9 {
		t.Errorf("Height = %v, want 9", b.Height)
	}
	if b.Material != "concrete" {
		t.Errorf("Material = %q, want concrete", b.Material)
	}
	if b.RoofShape != "flat" {
		t.Errorf("RoofShape = %q, want flat", b.RoofShape)
	}
	if b.YearBuilt != "unknown" {
		t.Errorf("YearBuilt = %q, want unknown", b.YearBuilt)
	}
}

func TestDeriveHeight(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want float64
	}{
		{
			name: "explicit numeric height wins",
			data: map[string]any{"height": 42.0, "building:levels": "10"},
			want: 42,
		},
		{
			name: "height as string",
			data: map[string]any{"height": "30"},
			want: 30,
		},
		{
			name: "derived from levels",
			data: map[string]any{"building:levels": "5"},
			want: 15,
		},
		{
			name: "non-numeric levels falls back to 10",
			data: map[string]any{"building:levels": "many"},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilding(tt.data)
			if b.Height != tt.want {
				t.Errorf("Height = %v, want %v", b.Height, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	b := sampleBuilding()

	tests := []struct {
		name      string
		predicate FilterPredicate
		want      bool
	}{
		{
			name:      "height greater than",
			predicate: FilterPredicate{Attribute: "height", Operator: ">", Value: 20},
			want:      true,
		},
		{
			name:      "height greater than fails",
			predicate: FilterPredicate{Attribute: "height", Operator: ">", Value: 30},
			want:      false,
		},
		{
			name:      "levels numeric comparison on string field",
			predicate: FilterPredicate{Attribute: "building:levels", Operator: ">=", Value: 6},
			want:      true,
		},
		{
			name:      "numeric value as string",
			predicate: FilterPredicate{Attribute: "height", Operator: "<", Value: "25"},
			want:      true,
		},
		{
			name:      "equality is case-insensitive",
			predicate: FilterPredicate{Attribute: "building", Operator: "=", Value: "Commercial"},
			want:      true,
		},
		{
			name:      "double equals accepted",
			predicate: FilterPredicate{Attribute: "building", Operator: "==", Value: "commercial"},
			want:      true,
		},
		{
			name:      "contains is case-insensitive substring",
			predicate: FilterPredicate{Attribute: "name", Operator: "contains", Value: "historic"},
			want:      true,
		},
		{
			name:      "contains miss",
			predicate: FilterPredicate{Attribute: "name", Operator: "contains", Value: "telus"},
			want:      false,
		},
		{
			name:      "start_date resolves to year built",
			predicate: FilterPredicate{Attribute: "start_date", Operator: "<", Value: 1950},
			want:      true,
		},
		{
			name:      "non-numeric value never matches numeric operator",
			predicate: FilterPredicate{Attribute: "height", Operator: ">", Value: "tall"},
			want:      false,
		},
		{
			name:      "non-numeric field never matches numeric operator",
			predicate: FilterPredicate{Attribute: "name", Operator: ">", Value: 5},
			want:      false,
		},
		{
			name:      "unknown attribute never matches",
			predicate: FilterPredicate{Attribute: "zoning", Operator: "=", Value: "RC-G"},
			want:      false,
		},
		{
			name:      "unknown operator never matches",
			predicate: FilterPredicate{Attribute: "height", Operator: "~", Value: 20},
			want:      false,
		},
		{
			name:      "street address lookup",
			predicate: FilterPredicate{Attribute: "addr:street", Operator: "contains", Value: "stephen"},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Matches(tt.predicate)
			if got != tt.want {
				t.Errorf("Matches(%+v) = %v, want %v", tt.predicate, got, tt.want)
			}
		})
	}
}

func TestMatchesAll(t *testing.T) {
	b := sampleBuilding()

	// Empty filter list matches every building.
	if !b.MatchesAll(nil) {
		t.Error("empty filter list should match")
	}

	all := []FilterPredicate{
		{Attribute: "building", Operator: "=", Value: "commercial"},
		{Attribute: "building:levels", Operator: ">", Value: 5},
	}
	if !b.MatchesAll(all) {
		t.Error("expected building to satisfy both predicates")
	}

	all = append(all, FilterPredicate{Attribute: "height", Operator: ">", Value: 100})
	if b.MatchesAll(all) {
		t.Error("one failing predicate should fail the conjunction")
	}
}

func TestToMap(t *testing.T) {
	m := sampleBuilding().ToMap()

	if m["type"] != "commercial" {
		t.Errorf("type = %v, want commercial", m["type"])
	}
	if m["year_built"] != "1909" {
		t.Errorf("year_built = %v, want 1909", m["year_built"])
	}
	if m["address"] != "Stephen Avenue" {
		t.Errorf("address = %v, want Stephen Avenue", m["address"])
	}
	for _, key := range []string{"id", "name", "levels", "height", "amenity", "shop", "office", "material", "roof_shape", "housenumber"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in map output", key)
		}
	}
}
