package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"cityviewer/internal/model"
)

// Catalog is the in-memory set of building records the server evaluates
// filters against. It is assembled once at startup and read-only afterwards.
type Catalog struct {
	buildings []*model.Building
	byID      map[string]*model.Building
}

// NewCatalog builds a catalog from raw attribute maps, normalizing each
// entry into a Building with the standard defaults.
func NewCatalog(raw []map[string]any) *Catalog {
	c := &Catalog{
		buildings: make([]*model.Building, 0, len(raw)),
		byID:      make(map[string]*model.Building, len(raw)),
	}
	for _, entry := range raw {
		b := model.NewBuilding(entry)
		c.buildings = append(c.buildings, b)
		if _, exists := c.byID[b.ID]; !exists {
			c.byID[b.ID] = b
		}
	}
	return c
}

// LoadCatalogFile reads a JSON array of raw attribute maps from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return NewCatalog(raw), nil
}

// All returns every building in the catalog.
func (c *Catalog) All() []*model.Building {
	return c.buildings
}

// Get looks up a building by its id.
func (c *Catalog) Get(id string) (*model.Building, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Len returns the number of buildings in the catalog.
func (c *Catalog) Len() int {
	return len(c.buildings)
}

// DefaultCatalog returns a small set of downtown Calgary landmarks used when
// neither a catalog file nor the Overpass loader is configured.
func DefaultCatalog() *Catalog {
	return NewCatalog([]map[string]any{
		{
			"id": "way/24361879", "name": "Calgary Tower", "building": "tower",
			"building:levels": "1", "height": "190.8", "start_date": "1968",
			"material": "concrete", "addr:street": "9 Avenue SW", "addr:housenumber": "101",
		},
		{
			"id": "way/41384502", "name": "The Bow", "building": "office",
			"building:levels": "58", "height": "236", "start_date": "2012",
			"material": "glass", "office": "company", "addr:street": "Centre Street SE", "addr:housenumber": "500",
		},
		{
			"id": "way/23782318", "name": "Lougheed House", "building": "house",
			"building:levels": "2", "start_date": "1891", "material": "sandstone",
			"addr:street": "13 Avenue SW", "addr:housenumber": "707",
		},
		{
			"id": "way/30791542", "name": "Fairmont Palliser Hotel", "building": "hotel",
			"building:levels": "12", "start_date": "1914", "material": "brick",
			"addr:street": "9 Avenue SW", "addr:housenumber": "133",
		},
		{
			"id": "way/50298124", "name": "Stephen Avenue Place", "building": "commercial",
			"building:levels": "41", "height": "170", "start_date": "1976",
			"material": "steel", "addr:street": "8 Avenue SW", "addr:housenumber": "700",
		},
		{
			"id": "way/89326471", "name": "Central Library", "building": "civic",
			"building:levels": "4", "start_date": "2018", "amenity": "library",
			"material": "glass", "addr:street": "3 Street SE", "addr:housenumber": "800",
		},
		{
			"id": "way/61230985", "name": "Hudson's Bay", "building": "retail",
			"building:levels": "6", "start_date": "1913", "shop": "department_store",
			"material": "terracotta", "addr:street": "8 Avenue SW", "addr:housenumber": "200",
		},
		{
			"id": "way/77120433", "name": "Telus Sky", "building": "mixed_use",
			"building:levels": "60", "height": "222", "start_date": "2020",
			"material": "glass", "addr:street": "Centre Street S", "addr:housenumber": "685",
		},
	})
}
