package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"cityviewer/internal/model"
	"cityviewer/internal/schema"
	"cityviewer/internal/utils"
)

// FilterService translates natural language queries into filter predicates
// and evaluates them against building records.
type FilterService struct {
	llm LLMClient
}

// NewFilterService creates a new filter service
func NewFilterService(llm LLMClient) *FilterService {
	return &FilterService{llm: llm}
}

// Translate converts a free-text query into a validated filter response.
// Every failure mode (model invocation, parsing, validation) collapses into
// the fixed fallback shape here, at the pipeline boundary; callers always
// receive a well-formed response.
func (s *FilterService) Translate(ctx context.Context, query string) *model.FilterResponse {
	resp, err := s.translate(ctx, query)
	if err != nil {
		log.Printf("filter translation failed for %q: %v", query, err)
		return model.FallbackFilterResponse(query)
	}
	return resp
}

func (s *FilterService) translate(ctx context.Context, query string) (*model.FilterResponse, error) {
	if s.llm == nil || !s.llm.IsEnabled() {
		return nil, fmt.Errorf("model provider is not configured")
	}

	raw, err := s.llm.Generate(ctx, FilterPrompt(query))
	if err != nil {
		return nil, fmt.Errorf("model invocation failed: %w", err)
	}

	resp, err := extractFilterResponse(raw)
	if err != nil {
		return nil, err
	}

	// Normalize and repair each predicate. Malformed ones are dropped,
	// never partially evaluated.
	processed := make([]model.FilterPredicate, 0, len(resp.Filters))
	for _, p := range resp.Filters {
		if !p.IsWellFormed() {
			continue
		}
		p.Attribute = schema.Normalize(p.Attribute)
		if note := resolveOverride(query, &p); note != "" {
			resp.Explanation = appendExplanation(resp.Explanation, note)
		}
		processed = append(processed, p)
	}
	resp.Filters = processed

	return resp, nil
}

// extractFilterResponse parses raw model text into a filter response.
// Both the filters key and a non-empty explanation are required; anything
// less is a parse failure.
func extractFilterResponse(raw string) (*model.FilterResponse, error) {
	var probe struct {
		Filters     *[]model.FilterPredicate `json:"filters"`
		Explanation *string                  `json:"explanation"`
		SortBy      string                   `json:"sortBy"`
		SortOrder   string                   `json:"sortOrder"`
	}
	if err := utils.ParseModelJSON(raw, &probe); err != nil {
		return nil, err
	}
	if probe.Filters == nil {
		return nil, fmt.Errorf("%w: response missing filters", utils.ErrParseFailure)
	}
	if probe.Explanation == nil || *probe.Explanation == "" {
		return nil, fmt.Errorf("%w: response missing explanation", utils.ErrParseFailure)
	}

	return &model.FilterResponse{
		Filters:     *probe.Filters,
		Explanation: *probe.Explanation,
		SortBy:      probe.SortBy,
		SortOrder:   probe.SortOrder,
	}, nil
}

// Apply evaluates the response's predicates against every building and
// returns the matches, sorted by the response's sort hint when present.
func (s *FilterService) Apply(resp *model.FilterResponse, buildings []*model.Building) []*model.Building {
	matched := make([]*model.Building, 0)
	for _, b := range buildings {
		if b.MatchesAll(resp.Filters) {
			matched = append(matched, b)
		}
	}

	if resp.SortBy != "" {
		sortBuildings(matched, schema.Normalize(resp.SortBy), resp.SortOrder)
	}
	return matched
}

// sortBuildings orders buildings by an attribute, numerically when both
// values coerce, lexically otherwise. Ascending is the default order.
func sortBuildings(buildings []*model.Building, attribute, order string) {
	desc := strings.EqualFold(order, "desc")
	sort.SliceStable(buildings, func(i, j int) bool {
		vi, iok := buildings[i].AttributeValue(attribute)
		vj, jok := buildings[j].AttributeValue(attribute)
		if !iok || !jok {
			// records without the attribute sort after those with it
			return iok && !jok
		}

		less := false
		ni, niok := model.NumericValue(vi)
		nj, njok := model.NumericValue(vj)
		if niok && njok {
			less = ni < nj
		} else {
			less = fmt.Sprintf("%v", vi) < fmt.Sprintf("%v", vj)
		}
		if desc {
			return !less
		}
		return less
	})
}
