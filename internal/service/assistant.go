package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"cityviewer/internal/model"
	"cityviewer/internal/utils"
)

// AssistantService answers the non-filter model requests: building
// summaries, open-ended questions, and building background context.
type AssistantService struct {
	llm LLMClient
}

// NewAssistantService creates a new assistant service
func NewAssistantService(llm LLMClient) *AssistantService {
	return &AssistantService{llm: llm}
}

// Summarize generates a profile for one building. Model or parse failures
// degrade to a deterministic summary built from the catalog fields, so the
// caller always gets a complete object.
func (s *AssistantService) Summarize(ctx context.Context, data map[string]any) *model.BuildingSummary {
	raw, err := s.generate(ctx, SummaryPrompt(data))
	if err != nil {
		log.Printf("summary generation failed: %v", err)
		return fallbackSummary(data)
	}

	var summary model.BuildingSummary
	if err := utils.ParseModelJSON(raw, &summary); err != nil {
		log.Printf("summary parse failed: %v", err)
		return fallbackSummary(data)
	}
	return &summary
}

// fallbackSummary builds the fixed-shape summary used when the model cannot
// be reached or answers with something unusable.
func fallbackSummary(data map[string]any) *model.BuildingSummary {
	levels := fmt.Sprintf("%v", fieldOr(data, "levels", "3"))
	buildingType := fmt.Sprintf("%v", fieldOr(data, "type", "commercial"))

	levelsNum, err := strconv.ParseFloat(levels, 64)
	if err != nil {
		levelsNum = 3
	}

	zoning := "C-COR1"
	if strings.EqualFold(buildingType, "residential") {
		zoning = "RC-G"
	}

	return &model.BuildingSummary{
		Summary:           fmt.Sprintf("This is a %s-story %s building in Calgary.", levels, buildingType),
		ConstructionCost:  "Estimated cost unavailable",
		BuildingType:      capitalize(buildingType),
		UrbanSignificance: "This building contributes to Calgary's urban landscape.",
		AssessedValue:     "$" + formatThousands(int64(levelsNum*500000)),
		Zoning:            zoning,
	}
}

// Answer responds to an open-ended urban planning question. The model's
// text is split on a "Sources:" marker into body and source list.
func (s *AssistantService) Answer(ctx context.Context, query string, qc *model.QueryContext) (*model.QueryResponse, error) {
	raw, err := s.generate(ctx, QueryPrompt(query, qc))
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	resp := &model.QueryResponse{Sources: []string{}}
	if body, sourcesText, found := strings.Cut(raw, "Sources:"); found {
		resp.Response = strings.TrimSpace(body)
		for _, line := range strings.Split(sourcesText, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				resp.Sources = append(resp.Sources, line)
			}
		}
	} else {
		resp.Response = strings.TrimSpace(raw)
	}
	return resp, nil
}

// BuildingContext asks the model for background knowledge about a named
// building. All failures yield the neutral fallback context.
func (s *AssistantService) BuildingContext(ctx context.Context, req *model.ContextRequest) *model.BuildingContext {
	raw, err := s.generate(ctx, ContextPrompt(req))
	if err != nil {
		log.Printf("building context failed: %v", err)
		return fallbackContext()
	}

	var bc model.BuildingContext
	if err := utils.ParseModelJSON(raw, &bc); err != nil {
		log.Printf("building context parse failed: %v", err)
		return fallbackContext()
	}
	return &bc
}

func fallbackContext() *model.BuildingContext {
	return &model.BuildingContext{
		EstimatedYear:        0,
		Confidence:           "low",
		ArchitecturalStyle:   "Unknown",
		NotableFeatures:      "No specific features identified",
		HistoricalContext:    "No historical information available",
		CulturalSignificance: "Unknown cultural significance",
		MaterialInfo:         "Typical construction materials for Calgary buildings include concrete, steel, and glass",
		SustainabilityInfo:   "No specific sustainability information available",
		SimilarExamples:      "No specific examples identified",
		UrbanContext:         "This building is part of Calgary's urban landscape",
		Reasoning:            "Unable to determine detailed building context due to insufficient information.",
	}
}

func (s *AssistantService) generate(ctx context.Context, prompt string) (string, error) {
	if s.llm == nil || !s.llm.IsEnabled() {
		return "", fmt.Errorf("model provider is not configured")
	}
	return s.llm.Generate(ctx, prompt)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatThousands renders 1500000 as "1,500,000".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		out.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if out.Len() > 0 {
			out.WriteString(",")
		}
		out.WriteString(s[i : i+3])
	}
	return out.String()
}
