package handler

import (
	"net/http"

	"cityviewer/internal/repository"

	"github.com/gin-gonic/gin"
)

// BuildingsHandler serves the raw building catalog.
type BuildingsHandler struct {
	catalog *repository.Catalog
}

// NewBuildingsHandler creates a new buildings handler
func NewBuildingsHandler(catalog *repository.Catalog) *BuildingsHandler {
	return &BuildingsHandler{catalog: catalog}
}

// List handles GET /api/buildings.
func (h *BuildingsHandler) List(c *gin.Context) {
	buildings := h.catalog.All()
	records := make([]map[string]any, 0, len(buildings))
	for _, b := range buildings {
		records = append(records, b.ToMap())
	}
	c.JSON(http.StatusOK, gin.H{
		"buildings": records,
		"total":     len(records),
	})
}

// Get handles GET /api/buildings/:id. Catalog ids carry an OSM element type
// prefix ("way/123") that cannot appear in a path segment, so a bare id is
// also resolved against each prefix.
func (h *BuildingsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	b, ok := h.catalog.Get(id)
	if !ok {
		for _, prefix := range []string{"way/", "node/", "relation/"} {
			if b, ok = h.catalog.Get(prefix + id); ok {
				break
			}
		}
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Building not found"})
		return
	}
	c.JSON(http.StatusOK, b.ToMap())
}
