package handler

import (
	"net/http"

	"cityviewer/internal/model"
	"cityviewer/internal/repository"
	"cityviewer/internal/service"

	"github.com/gin-gonic/gin"
)

// FilterHandler handles natural language filter requests.
type FilterHandler struct {
	filterService *service.FilterService
	catalog       *repository.Catalog
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(filterService *service.FilterService, catalog *repository.Catalog) *FilterHandler {
	return &FilterHandler{
		filterService: filterService,
		catalog:       catalog,
	}
}

// Filter handles POST /api/filter. Translation failures are already folded
// into the fallback response, so this always answers 200 with a well-formed
// body once the request itself parses.
func (h *FilterHandler) Filter(c *gin.Context) {
	var req model.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp := h.filterService.Translate(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, resp)
}

// ApplyFilter handles POST /api/filter/apply: translate the query, then
// evaluate the predicates against the catalog and return the matches.
func (h *FilterHandler) ApplyFilter(c *gin.Context) {
	var req model.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp := h.filterService.Translate(c.Request.Context(), req.Query)
	matched := h.filterService.Apply(resp, h.catalog.All())

	records := make([]map[string]any, 0, len(matched))
	for _, b := range matched {
		records = append(records, b.ToMap())
	}

	c.JSON(http.StatusOK, model.ApplyFilterResponse{
		FilterResponse: *resp,
		Matched:        records,
		Total:          len(records),
	})
}
