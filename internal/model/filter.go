package model

import "fmt"

// Operators accepted by the predicate evaluator.
const (
	OpGreater      = ">"
	OpLess         = "<"
	OpGreaterEqual = ">="
	OpLessEqual    = "<="
	OpEqual        = "="
	OpContains     = "contains"
)

// FilterPredicate is one filter condition extracted from a natural language
// query. Value keeps whatever JSON type the model produced (string or number).
type FilterPredicate struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     any    `json:"value"`
}

// IsWellFormed reports whether all three fields are present. Predicates that
// fail this check are dropped from the response, never partially evaluated.
func (p FilterPredicate) IsWellFormed() bool {
	return p.Attribute != "" && p.Operator != "" && p.Value != nil
}

// FilterResponse is the structured translation of a free-text query.
// Filters and Explanation are mandatory; SortBy/SortOrder are optional hints
// passed through from the model untouched.
type FilterResponse struct {
	Filters     []FilterPredicate `json:"filters"`
	Explanation string            `json:"explanation"`
	SortBy      string            `json:"sortBy,omitempty"`
	SortOrder   string            `json:"sortOrder,omitempty"`
}

// FallbackFilterResponse is the fixed shape emitted whenever translation
// fails. The field names and message format are part of the API contract.
func FallbackFilterResponse(query string) *FilterResponse {
	return &FilterResponse{
		Filters:     []FilterPredicate{},
		Explanation: fmt.Sprintf("Could not parse the query: %s. Please try a different query format.", query),
	}
}
