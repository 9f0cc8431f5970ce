package model

// FilterRequest is the body of POST /api/filter and /api/filter/apply.
type FilterRequest struct {
	Query string `json:"query" binding:"required"`
}

// ApplyFilterResponse pairs the translated filters with the catalog records
// that satisfy them.
type ApplyFilterResponse struct {
	FilterResponse
	Matched []map[string]any `json:"matched"`
	Total   int              `json:"total"`
}

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	Query   string        `json:"query" binding:"required"`
	Context *QueryContext `json:"context,omitempty"`
}

// QueryContext narrows a free-text query to a location and topic.
type QueryContext struct {
	Location string `json:"location,omitempty"`
	Topic    string `json:"topic,omitempty"`
}

// QueryResponse is the answer to a free-text query, with any sources the
// model cited split out of the body text.
type QueryResponse struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources"`
}

// SummaryRequest is the body of POST /api/summary.
type SummaryRequest struct {
	BuildingData map[string]any `json:"building_data" binding:"required"`
}

// BuildingSummary is the model-generated profile of one building.
// ConstructionCost and AssessedValue may come back as text or a number
// depending on the model, so they stay untyped.
type BuildingSummary struct {
	Summary           string `json:"summary"`
	ConstructionCost  any    `json:"constructionCost"`
	BuildingType      string `json:"buildingType"`
	UrbanSignificance string `json:"urbanSignificance"`
	AssessedValue     any    `json:"assessedValue"`
	Zoning            string `json:"zoning"`
}

// ContextRequest is the body of POST /api/building-context.
type ContextRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	QueryType string `json:"query_type"`
}

// BuildingContext is background knowledge about a building used to enrich
// summaries when catalog data is sparse.
type BuildingContext struct {
	EstimatedYear        int    `json:"estimatedYear"`
	Confidence           string `json:"confidence"`
	ArchitecturalStyle   string `json:"architecturalStyle"`
	NotableFeatures      string `json:"notableFeatures"`
	HistoricalContext    string `json:"historicalContext"`
	CulturalSignificance string `json:"culturalSignificance"`
	MaterialInfo         string `json:"materialInfo"`
	SustainabilityInfo   string `json:"sustainabilityInfo"`
	SimilarExamples      string `json:"similarExamples"`
	UrbanContext         string `json:"urbanContext"`
	Reasoning            string `json:"reasoning"`
}
