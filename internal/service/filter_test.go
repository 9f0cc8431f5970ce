package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cityviewer/internal/model"
)

// fakeLLM returns a canned response or error.
type fakeLLM struct {
	response string
	err      error
	prompt   string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Name() string    { return "fake" }
func (f *fakeLLM) IsEnabled() bool { return true }

func TestTranslateHeightQuery(t *testing.T) {
	llm := &fakeLLM{response: `{
		"filters": [{"attribute": "height", "operator": ">", "value": 30}],
		"explanation": "Showing buildings with height greater than 30 meters"
	}`}
	svc := NewFilterService(llm)

	resp := svc.Translate(context.Background(), "show buildings taller than 30 meters")

	if len(resp.Filters) != 1 {
		t.Fatalf("got %d filters, want 1", len(resp.Filters))
	}
	p := resp.Filters[0]
	if p.Attribute != "height" || p.Operator != ">" {
		t.Errorf("predicate = (%s %s), want (height >)", p.Attribute, p.Operator)
	}
	if v, ok := model.NumericValue(p.Value); !ok || v != 30 {
		t.Errorf("value = %v, want 30", p.Value)
	}
	if !strings.Contains(llm.prompt, "show buildings taller than 30 meters") {
		t.Error("prompt should embed the original query")
	}
}

func TestTranslateNormalizesSynonyms(t *testing.T) {
	llm := &fakeLLM{response: `{
		"filters": [
			{"attribute": "building", "operator": "=", "value": "commercial"},
			{"attribute": "floors", "operator": ">", "value": 5}
		],
		"explanation": "Showing commercial buildings with more than 5 floors"
	}`}
	svc := NewFilterService(llm)

	resp := svc.Translate(context.Background(), "find commercial buildings with more than 5 floors")

	if len(resp.Filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(resp.Filters))
	}
	if resp.Filters[0].Attribute != "building" {
		t.Errorf("first attribute = %s, want building", resp.Filters[0].Attribute)
	}
	if resp.Filters[1].Attribute != "building:levels" {
		t.Errorf("second attribute = %s, want building:levels (synonym floors)", resp.Filters[1].Attribute)
	}
}

func TestTranslateAppliesHistoricalOverride(t *testing.T) {
	llm := &fakeLLM{response: `{
		"filters": [{"attribute": "start_date", "operator": "<", "value": 1950}],
		"explanation": "Showing the oldest buildings"
	}`}
	svc := NewFilterService(llm)

	resp := svc.Translate(context.Background(), "what is the oldest building")

	if len(resp.Filters) != 1 {
		t.Fatalf("got %d filters, want 1", len(resp.Filters))
	}
	p := resp.Filters[0]
	if p.Attribute != "name" || p.Operator != "contains" || p.Value != "historic" {
		t.Errorf("predicate = (%s %s %v), want (name contains historic)", p.Attribute, p.Operator, p.Value)
	}
	if !strings.HasSuffix(resp.Explanation, "Using building names and Calgary's historical context to identify likely historical buildings.") {
		t.Errorf("explanation missing historical clarification: %q", resp.Explanation)
	}
}

func TestTranslateExtractsFencedJSON(t *testing.T) {
	llm := &fakeLLM{response: "Sure, here you go:\n```json\n" +
		`{"filters": [{"attribute": "height", "operator": ">", "value": 100}], "explanation": "Tall buildings"}` +
		"\n```\nHope that helps!"}
	svc := NewFilterService(llm)

	resp := svc.Translate(context.Background(), "skyscrapers")

	if len(resp.Filters) != 1 {
		t.Fatalf("got %d filters, want 1; explanation: %s", len(resp.Filters), resp.Explanation)
	}
	if resp.Explanation != "Tall buildings" {
		t.Errorf("explanation = %q, want Tall buildings", resp.Explanation)
	}
}

func TestTranslateDropsMalformedPredicates(t *testing.T) {
	llm := &fakeLLM{response: `{
		"filters": [
			{"attribute": "height", "operator": ">"},
			{"operator": "=", "value": "commercial"},
			{"attribute": "building", "operator": "=", "value": "commercial"}
		],
		"explanation": "Mixed bag"
	}`}
	svc := NewFilterService(llm)

	resp := svc.Translate(context.Background(), "commercial buildings")

	if len(resp.Filters) != 1 {
		t.Fatalf("got %d filters, want 1 (malformed ones dropped)", len(resp.Filters))
	}
	if resp.Filters[0].Attribute != "building" {
		t.Errorf("surviving attribute = %s, want building", resp.Filters[0].Attribute)
	}
}

func TestTranslateFallbacks(t *testing.T) {
	query := "show me something"
	wantExplanation := "Could not parse the query: show me something. Please try a different query format."

	tests := []struct {
		name string
		llm  *fakeLLM
	}{
		{
			name: "model invocation failure",
			llm:  &fakeLLM{err: errors.New("connection refused")},
		},
		{
			name: "not JSON at all",
			llm:  &fakeLLM{response: "I'm sorry, I can't help with that."},
		},
		{
			name: "missing explanation key",
			llm:  &fakeLLM{response: `{"filters": []}`},
		},
		{
			name: "missing filters key",
			llm:  &fakeLLM{response: `{"explanation": "no filters here"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewFilterService(tt.llm).Translate(context.Background(), query)

			if resp == nil {
				t.Fatal("fallback must never be nil")
			}
			if len(resp.Filters) != 0 {
				t.Errorf("fallback filters = %v, want empty", resp.Filters)
			}
			if resp.Explanation != wantExplanation {
				t.Errorf("fallback explanation = %q, want %q", resp.Explanation, wantExplanation)
			}
		})
	}
}

func TestTranslateSortHintsPassThrough(t *testing.T) {
	llm := &fakeLLM{response: `{
		"filters": [{"attribute": "height", "operator": ">", "value": 0}],
		"explanation": "Tallest buildings first",
		"sortBy": "height",
		"sortOrder": "desc"
	}`}
	svc := NewFilterService(llm)

	resp := svc.Translate(context.Background(), "tallest buildings")

	if resp.SortBy != "height" || resp.SortOrder != "desc" {
		t.Errorf("sort hints = (%s, %s), want (height, desc)", resp.SortBy, resp.SortOrder)
	}
}

func TestApply(t *testing.T) {
	buildings := []*model.Building{
		model.NewBuilding(map[string]any{"id": "1", "name": "Calgary Tower", "height": 191.0}),
		model.NewBuilding(map[string]any{"id": "2", "name": "The Bow", "height": 236.0}),
		model.NewBuilding(map[string]any{"id": "3", "name": "Corner Shop", "height": 6.0}),
	}
	svc := NewFilterService(nil)

	resp := &model.FilterResponse{
		Filters:   []model.FilterPredicate{{Attribute: "height", Operator: ">", Value: 0}},
		SortBy:    "height",
		SortOrder: "desc",
	}
	matched := svc.Apply(resp, buildings)

	if len(matched) != 3 {
		t.Fatalf("got %d matches, want 3", len(matched))
	}
	if matched[0].ID != "2" || matched[1].ID != "1" || matched[2].ID != "3" {
		t.Errorf("sort order wrong: %s, %s, %s", matched[0].ID, matched[1].ID, matched[2].ID)
	}

	// Empty filter list matches every record.
	matched = svc.Apply(&model.FilterResponse{Filters: []model.FilterPredicate{}}, buildings)
	if len(matched) != len(buildings) {
		t.Errorf("empty filters matched %d, want %d", len(matched), len(buildings))
	}

	// Contains filter narrows the set.
	resp = &model.FilterResponse{
		Filters: []model.FilterPredicate{{Attribute: "name", Operator: "contains", Value: "bow"}},
	}
	matched = svc.Apply(resp, buildings)
	if len(matched) != 1 || matched[0].ID != "2" {
		t.Errorf("contains filter matched %v, want only The Bow", matched)
	}
}
