package service

import (
	"testing"

	"cityviewer/internal/model"
)

func startDatePredicate() model.FilterPredicate {
	return model.FilterPredicate{Attribute: "start_date", Operator: ">", Value: 1900}
}

func TestResolveOverrideHistorical(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantValue string
	}{
		{
			name:      "oldest picks historic",
			query:     "what is the oldest building",
			wantValue: "historic",
		},
		{
			name:      "heritage picks heritage",
			query:     "show me heritage buildings",
			wantValue: "heritage",
		},
		{
			name:      "heritage with oldest still picks historic",
			query:     "oldest heritage building downtown",
			wantValue: "historic",
		},
		{
			name:      "historical picks historic",
			query:     "historical buildings please",
			wantValue: "historic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := startDatePredicate()
			note := resolveOverride(tt.query, &p)

			if note == "" {
				t.Fatal("expected an override to apply")
			}
			if p.Attribute != "name" || p.Operator != "contains" {
				t.Errorf("predicate rewritten to (%s %s), want (name contains)", p.Attribute, p.Operator)
			}
			if p.Value != tt.wantValue {
				t.Errorf("value = %v, want %q", p.Value, tt.wantValue)
			}
		})
	}
}

func TestResolveOverrideModern(t *testing.T) {
	tests := []struct {
		query     string
		wantValue string
	}{
		{"show me the newest buildings", "telus"},
		{"modern buildings built recently", "bow"},
		{"recent developments downtown", "brookfield"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := startDatePredicate()
			note := resolveOverride(tt.query, &p)
			if note == "" {
				t.Fatal("expected an override to apply")
			}
			if p.Value != tt.wantValue {
				t.Errorf("value = %v, want %q", p.Value, tt.wantValue)
			}
		})
	}
}

// Historical and modern overrides only apply when the model produced a
// start_date predicate; other attributes pass through untouched.
func TestResolveOverrideStartDateGate(t *testing.T) {
	p := model.FilterPredicate{Attribute: "name", Operator: "contains", Value: "tower"}
	note := resolveOverride("what is the oldest building", &p)

	if note != "" {
		t.Errorf("expected no override, got note %q", note)
	}
	if p.Value != "tower" {
		t.Errorf("predicate changed to %v, want tower", p.Value)
	}
}

func TestResolveOverrideStyle(t *testing.T) {
	tests := []struct {
		query     string
		wantValue string
	}{
		{"show me art deco architecture", "palliser"},
		{"contemporary design buildings", "bow"},
		{"brutalist architecture", "calgary tower"},
		{"concrete style buildings", "calgary tower"},
		{"glass tower architecture", "telus"},
		{"interesting building design", "bow"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			// Style overrides apply regardless of the predicate's attribute.
			p := model.FilterPredicate{Attribute: "building", Operator: "=", Value: "commercial"}
			note := resolveOverride(tt.query, &p)
			if note == "" {
				t.Fatal("expected an override to apply")
			}
			if p.Attribute != "name" || p.Value != tt.wantValue {
				t.Errorf("rewritten to (%s %v), want (name %q)", p.Attribute, p.Value, tt.wantValue)
			}
		})
	}
}

func TestResolveOverrideCulturalAndSustainable(t *testing.T) {
	p := model.FilterPredicate{Attribute: "amenity", Operator: "=", Value: "museum"}
	if note := resolveOverride("show me iconic landmarks", &p); note == "" {
		t.Fatal("expected cultural override")
	}
	if p.Value != "calgary tower" {
		t.Errorf("value = %v, want calgary tower", p.Value)
	}

	p = model.FilterPredicate{Attribute: "building", Operator: "=", Value: "office"}
	if note := resolveOverride("LEED certified green buildings", &p); note == "" {
		t.Fatal("expected sustainability override")
	}
	if p.Value != "bow" {
		t.Errorf("value = %v, want bow", p.Value)
	}
}

// The ladder is first-match-wins: a historical query that also mentions a
// style keyword stays in the historical category.
func TestResolveOverridePriorityOrder(t *testing.T) {
	p := startDatePredicate()
	note := resolveOverride("oldest buildings with interesting architecture", &p)

	if p.Value != "historic" {
		t.Errorf("value = %v, want historic (historical category outranks style)", p.Value)
	}
	if note != " Using building names and Calgary's historical context to identify likely historical buildings." {
		t.Errorf("unexpected note %q", note)
	}
}

func TestResolveOverrideNoMatch(t *testing.T) {
	p := model.FilterPredicate{Attribute: "height", Operator: ">", Value: 30}
	if note := resolveOverride("buildings taller than 30 meters", &p); note != "" {
		t.Errorf("expected no override for a plain height query, got %q", note)
	}
	if p.Attribute != "height" {
		t.Errorf("predicate attribute changed to %s", p.Attribute)
	}
}

func TestAppendExplanation(t *testing.T) {
	got := appendExplanation("Showing old buildings", " Extra sentence.")
	want := "Showing old buildings. Extra sentence."
	if got != want {
		t.Errorf("appendExplanation() = %q, want %q", got, want)
	}

	// Existing trailing period is not doubled.
	got = appendExplanation("Showing old buildings.", " Extra sentence.")
	if got != want {
		t.Errorf("appendExplanation() = %q, want %q", got, want)
	}
}
