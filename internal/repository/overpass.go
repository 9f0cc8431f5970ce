package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// OverpassLoader fetches building footprint tags from the Overpass API for a
// fixed bounding box, producing the raw attribute maps the catalog consumes.
type OverpassLoader struct {
	endpoint string
	bbox     string // south,west,north,east
	client   *http.Client
}

// NewOverpassLoader creates a loader against the given Overpass endpoint.
func NewOverpassLoader(endpoint, bbox string, timeout time.Duration) *OverpassLoader {
	return &OverpassLoader{
		endpoint: endpoint,
		bbox:     bbox,
		client:   &http.Client{Timeout: timeout},
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Tags map[string]string `json:"tags"`
}

// Load queries every way tagged as a building inside the bounding box and
// converts the results into raw attribute maps keyed by OSM tag names.
func (l *OverpassLoader) Load(ctx context.Context) ([]map[string]any, error) {
	query := fmt.Sprintf("[out:json][timeout:25];way[\"building\"](%s);out tags;", l.bbox)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read overpass response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed overpassResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse overpass response: %w", err)
	}

	return elementsToMaps(parsed.Elements), nil
}

// elementsToMaps flattens OSM elements into attribute maps. The id carries
// the element type prefix ("way/123") so it stays unique across types.
func elementsToMaps(elements []overpassElement) []map[string]any {
	raw := make([]map[string]any, 0, len(elements))
	for _, el := range elements {
		if len(el.Tags) == 0 {
			continue
		}
		entry := make(map[string]any, len(el.Tags)+1)
		entry["id"] = el.Type + "/" + strconv.FormatInt(el.ID, 10)
		for k, v := range el.Tags {
			entry[k] = v
		}
		raw = append(raw, entry)
	}
	return raw
}
