package service

import (
	"fmt"
	"strings"

	"cityviewer/internal/model"
)

// FilterPrompt renders the translation prompt for a free-text filter query.
// The attribute vocabulary, special cases, and examples steer the model
// toward predicates the catalog can ground.
func FilterPrompt(query string) string {
	return fmt.Sprintf(filterPromptTemplate, query)
}

const filterPromptTemplate = `You are an expert on building data and filtering. Extract filter criteria from this query: "%s"

The available building attributes are:
- height (in meters, not feet) - all height values are in meters
- building:levels (number of floors) - also referred to as 'levels' or 'floors'
- building (type of building: residential, commercial, apartments, etc.)
- amenity (facilities: restaurant, school, hospital, etc.)
- shop (type of shop if present)
- office (type of office if present)
- name (building name)
- addr:street (street address) - also referred to as 'street' or 'address'
- addr:housenumber (house number) - also referred to as 'number'
- start_date (year built) - also referred to as 'year' or 'built'
- zoning (zoning code like RC-G, C-COR1, etc.)
- assessedValue (property value in dollars)

IMPORTANT: If the query mentions 'floors', 'levels', or 'stories', always use the attribute 'building:levels'.
If the query mentions 'type', 'building type', or specific types like 'residential', 'commercial', etc., use the attribute 'building'.

SPECIAL CASES AND KNOWLEDGE-BASED FILTERING:
Use your knowledge of Calgary's architecture, urban planning, and building information to enhance your responses. When explicit data might be missing, use your knowledge to provide meaningful results.

1. For historical queries ("oldest building", "historical buildings", "heritage buildings"):
   Instead of relying solely on start_date which may be missing, use your knowledge of Calgary's historical buildings.
   Examples: Stephen Avenue historic buildings (late 1800s), Lougheed House (1891), Calgary City Hall (1911), Grain Exchange Building (1909).
   Create appropriate filters based on names, locations, or architectural styles.

2. For modern building queries ("newest building", "modern architecture", "recent developments"):
   Use your knowledge of Calgary's recent developments.
   Examples: Telus Sky (2019), Brookfield Place (2017), The Bow (2012), Eighth Avenue Place (2011).
   Create appropriate filters based on names, architectural styles, or materials.

3. For architectural style queries ("art deco buildings", "brutalist architecture", "glass towers"):
   Use your knowledge of architectural styles in Calgary.
   Examples: The Bow (curved glass), Bankers Hall (postmodern), Calgary Tower (brutalist elements).
   Create appropriate filters based on names, materials, or other attributes.

4. For cultural significance queries ("important landmarks", "iconic buildings", "cultural centers"):
   Use your knowledge of Calgary's culturally significant buildings.
   Examples: Calgary Tower, Glenbow Museum, TELUS Convention Centre, Arts Commons.
   Create appropriate filters based on names, functions, or locations.

5. For height-based queries ("tallest buildings", "skyscrapers"):
   Create a filter with attribute="height", operator=">", value="0" and add "sortBy": "height", "sortOrder": "desc".
   Note that height is in meters.

6. For value-based queries ("most valuable buildings", "expensive properties"):
   Create a filter with attribute="assessedValue", operator=">", value="0" and add "sortBy": "assessedValue", "sortOrder": "desc".

7. For sustainability queries ("green buildings", "sustainable architecture", "LEED certified"):
   Use your knowledge of Calgary's sustainable buildings.
   Examples: The Bow (energy efficient design), Telus Sky (LEED certification), Eighth Avenue Place (green features).
   Create appropriate filters based on names or other attributes.

Return a JSON object with an array of filters. Each filter should have:
- attribute: The building attribute to filter on (from the list above)
- operator: One of >, <, =, >=, <=, or "contains" for text search
- value: The value to compare against

Also include an "explanation" field that briefly explains the filters in plain English.

Example 1: "show buildings taller than 30 meters"
Response: {
  "filters": [
    {
      "attribute": "height",
      "operator": ">",
      "value": 30
    }
  ],
  "explanation": "Showing buildings with height greater than 30 meters"
}

Example 2: "find commercial buildings with more than 5 floors"
Response: {
  "filters": [
    {
      "attribute": "building",
      "operator": "=",
      "value": "commercial"
    },
    {
      "attribute": "building:levels",
      "operator": ">",
      "value": 5
    }
  ],
  "explanation": "Showing commercial buildings with more than 5 floors"
}

Example 3: "what is the oldest building"
Response: {
  "filters": [
    {
      "attribute": "name",
      "operator": "contains",
      "value": "historic"
    }
  ],
  "explanation": "Showing buildings that are likely historical based on their names and Calgary's history. Historical buildings in Calgary include structures from the late 1800s and early 1900s."
}

Example 4: "show me the newest buildings"
Response: {
  "filters": [
    {
      "attribute": "name",
      "operator": "contains",
      "value": "Telus Sky"
    }
  ],
  "explanation": "Showing modern buildings in Calgary like Telus Sky which was completed in 2019."
}

Example 5: "show me art deco buildings"
Response: {
  "filters": [
    {
      "attribute": "name",
      "operator": "contains",
      "value": "Palliser"
    }
  ],
  "explanation": "Showing buildings with Art Deco architectural elements in Calgary. The Palliser Hotel (now Fairmont Palliser) features some Art Deco influences."
}

Example 6: "show me culturally significant buildings"
Response: {
  "filters": [
    {
      "attribute": "name",
      "operator": "contains",
      "value": "Calgary Tower"
    }
  ],
  "explanation": "Showing culturally significant buildings in Calgary. The Calgary Tower is an iconic landmark that symbolizes the city."
}

Example 7: "show me sustainable buildings"
Response: {
  "filters": [
    {
      "attribute": "name",
      "operator": "contains",
      "value": "Bow"
    }
  ],
  "explanation": "Showing buildings with sustainable design features. The Bow incorporates energy-efficient design elements."
}

Format your response as valid JSON with these keys: filters (array), explanation (string), and optional sortBy and sortOrder fields.`

// SummaryPrompt renders the building summary prompt from the raw building
// payload, including the optional knowledge-context block when present.
func SummaryPrompt(data map[string]any) string {
	contextInfo := ""
	if raw, ok := data["building_context"].(map[string]any); ok {
		contextInfo = fmt.Sprintf(`
Additional Context Information:
Estimated Year Built: %v
Confidence: %v
Architectural Style: %v
Notable Features: %v
Historical Context: %v
Cultural Significance: %v
Material Information: %v
Sustainability Features: %v
Similar Examples: %v
Urban Context: %v
Reasoning: %v
`,
			fieldOr(raw, "estimatedYear", "unknown"),
			fieldOr(raw, "confidence", "low"),
			fieldOr(raw, "architecturalStyle", "Unknown"),
			fieldOr(raw, "notableFeatures", "Unknown"),
			fieldOr(raw, "historicalContext", "Unknown"),
			fieldOr(raw, "culturalSignificance", "Unknown"),
			fieldOr(raw, "materialInfo", "Unknown"),
			fieldOr(raw, "sustainabilityInfo", "Unknown"),
			fieldOr(raw, "similarExamples", "Unknown"),
			fieldOr(raw, "urbanContext", "Unknown"),
			fieldOr(raw, "reasoning", "No additional information available"),
		)
	}

	return fmt.Sprintf(`Generate a detailed summary for this building in Calgary:

Building ID: %v
Name: %v
Type: %v
Floors: %v
Height: %v meters
Amenities: %v
Shops: %v
Offices: %v
Year Built: %v
Building Material: %v
Roof Shape: %v
Address: %v %v
%s
Provide the following information in JSON format:
1. A detailed summary of the building (2-3 sentences). Include architectural style, historical context, and notable features if available from the context information.
2. Estimated construction cost (based on building type, size, materials, and historical context)
3. Building type classification (be specific about the architectural style if known)
4. Urban significance (how this building contributes to Calgary's urban landscape, including any cultural or historical significance)
5. Assessed value (provide a realistic property value based on building type, size, location, and historical significance in Calgary)
6. Zoning information (provide a realistic zoning code for this type of building in Calgary, e.g. RC-G for residential, CC-X for downtown commercial, etc.)

Format your response as valid JSON with these keys: summary, constructionCost, buildingType, urbanSignificance, assessedValue, zoning`,
		fieldOr(data, "id", "unknown"),
		fieldOr(data, "name", "Unnamed Building"),
		fieldOr(data, "type", "commercial"),
		fieldOr(data, "levels", "3"),
		fieldOr(data, "height", "10"),
		fieldOr(data, "amenity", "None"),
		fieldOr(data, "shop", "None"),
		fieldOr(data, "office", "None"),
		fieldOr(data, "year_built", "unknown"),
		fieldOr(data, "material", "concrete"),
		fieldOr(data, "roof_shape", "flat"),
		fieldOr(data, "address", "Unknown"),
		fieldOr(data, "housenumber", ""),
		contextInfo,
	)
}

// QueryPrompt renders the prompt for an open-ended urban planning question.
func QueryPrompt(query string, qc *model.QueryContext) string {
	location := "Calgary"
	topic := "urban architecture and city planning"
	if qc != nil {
		if qc.Location != "" {
			location = qc.Location
		}
		if qc.Topic != "" {
			topic = qc.Topic
		}
	}

	return fmt.Sprintf(`You are an expert on urban architecture and city planning, especially for Calgary, Canada.

User Query: %s

Context:
- Location: %s
- Topic: %s

Provide a detailed, informative response to the query. If you don't have specific information
about Calgary related to this query, you can provide general information about urban planning
and architecture principles, but clearly state that you're providing general information.

If relevant, include sources or references that would support your response.`,
		query, location, topic)
}

// ContextPrompt renders the prompt asking for background knowledge about a
// named building.
func ContextPrompt(req *model.ContextRequest) string {
	queryType := req.QueryType
	if queryType == "" {
		queryType = "age"
	}

	return fmt.Sprintf(`You are an expert on Calgary's architecture, urban planning, and building information. Provide comprehensive information about this building:

Building Name: %s
Building Type: %s
Information Requested: %s

If the building name is generic or unknown, use your knowledge of Calgary's architecture to provide detailed information about buildings of this type in Calgary.

Include information about:
1. Architectural style and notable features typical for this type of building in Calgary
2. Historical context and significance (if applicable)
3. Typical materials used in construction
4. Likely zoning and urban planning context
5. Typical usage patterns and functions
6. Estimated construction period or year
7. Notable examples of similar buildings in Calgary
8. Any cultural or economic significance
9. Sustainability features (if applicable)
10. Relationship to Calgary's urban development patterns

Format your response as valid JSON with these keys:
- estimatedYear (number, e.g. 1980, or 0 if unknown)
- confidence (string: "high", "medium", or "low")
- architecturalStyle (string describing the likely architectural style)
- notableFeatures (string describing distinctive features)
- historicalContext (string with historical information)
- culturalSignificance (string describing cultural importance)
- materialInfo (string describing typical construction materials)
- sustainabilityInfo (string describing any sustainability aspects)
- similarExamples (string listing similar buildings in Calgary)
- urbanContext (string describing relationship to urban planning)
- reasoning (string explaining your overall assessment)`,
		req.Name, req.Type, queryType)
}

// fieldOr reads a map field as display text, falling back when absent.
func fieldOr(data map[string]any, key, fallback string) any {
	v, ok := data[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return fallback
	}
	return v
}
